package progress

import (
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/minio/pkg/console"
)

// Bar tracks collected samples against the configured sample cap.
type Bar struct {
	*pb.ProgressBar
}

// NewBar - instantiate a progress bar sized to the maximum sample count.
func NewBar(maxSamples int) *Bar {
	// Progress bar specific theme customization.
	console.SetColor("Bar", color.New(color.FgGreen, color.Bold))

	bar := pb.New(maxSamples)

	// Customize the refresh rate and behavior
	bar.SetRefreshRate(time.Millisecond * 125)
	bar.SetTemplateString(`{{string . "prefix"}} {{counters . }} {{bar . }} {{percent . }}`)

	bar.Start()

	return &Bar{ProgressBar: bar}
}

// SetCaption sets the caption of the progress bar.
func (b *Bar) SetCaption(caption string) *Bar {
	b.ProgressBar.Set("prefix", caption)
	return b
}

// Sample records one collected sample. The cap is an upper bound, not a
// prediction: a run that converges early leaves the bar short, which Finish
// clears.
func (b *Bar) Sample() {
	b.ProgressBar.Increment()
}
