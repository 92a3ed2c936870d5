package composer

// Store keys used when none are configured with WithKeys.
const (
	DefaultBlocksKey    = "emailBlocks"
	DefaultTemplatesKey = "emailTemplates"
)

// Keys names the store entries holding the two catalogs.
type Keys struct {
	Blocks    string
	Templates string
}

// DefaultKeys returns the keys the browser widget used in localStorage.
func DefaultKeys() Keys {
	return Keys{Blocks: DefaultBlocksKey, Templates: DefaultTemplatesKey}
}

// DefaultBlocks is the catalog written to an empty store.
func DefaultBlocks() []Block {
	return []Block{
		{ID: 1, Text: "Beste [Naam],", Category: CategoryGreeting},
		{ID: 2, Text: "Met vriendelijke groet,", Category: CategoryClosing},
		{ID: 3, Text: "Hartelijk dank voor uw bericht.", Category: CategoryStandard},
		{ID: 4, Text: "We nemen zo spoedig mogelijk contact met u op.", Category: CategoryStandard},
		{ID: 5, Text: "Graag ontvang ik meer informatie over:", Category: CategoryQuestion},
	}
}

// DefaultTemplates is the template list written to an empty store.
func DefaultTemplates() []Template {
	return []Template{
		{
			ID:   1,
			Name: "Standaard reactie",
			Content: []string{
				"Beste [Naam],",
				"Hartelijk dank voor uw bericht.",
				"We nemen zo spoedig mogelijk contact met u op.",
				"Met vriendelijke groet,",
			},
		},
		{
			ID:   2,
			Name: "Offerte aanvraag",
			Content: []string{
				"Beste [Naam],",
				"Bedankt voor uw interesse in onze diensten.",
				"We sturen u binnen 2 werkdagen een offerte toe.",
				"Met vriendelijke groet,",
			},
		},
	}
}
