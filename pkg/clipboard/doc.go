// Package clipboard delivers exported text to wherever the user can paste it.
//
// A Sink receives the whole text in one Write. SystemSink puts it on the
// platform clipboard and CommandSink pipes it into a program of the user's
// choice. WriterSink prints it so it can be selected by hand, while FileSink
// and EmailSink park it somewhere outside the terminal.
// Fallback chains sinks and stops at the first one that succeeds:
//
//	sink := clipboard.Fallback(
//	    clipboard.Auto(),
//	    clipboard.NewWriterSink(os.Stdout),
//	)
//	if err := sink.Write(ctx, text); err != nil {
//	    return err
//	}
package clipboard
