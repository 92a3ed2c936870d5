package clipboard

func NewSystemSinkWith(write func(string) error, supported bool) *SystemSink {
	return &SystemSink{write: write, supported: supported}
}
