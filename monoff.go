package monoff

import (
	"image"
	"image/color"

	"github.com/imamik/monoff/internal/filters"
	"github.com/imamik/monoff/internal/frames"
	"github.com/imamik/monoff/internal/pipeline"
)

type (
	Failure = pipeline.Failure
	Reason  = pipeline.Reason
	Ratio   = frames.Ratio
)

const (
	ReasonNoSource          = pipeline.ReasonNoSource
	ReasonInvalidParameters = pipeline.ReasonInvalidParameters
	ReasonAllocation        = pipeline.ReasonAllocation
	ReasonEncode            = pipeline.ReasonEncode
	ReasonRender            = pipeline.ReasonRender
)

type Options struct {
	AspectRatio     float64
	FrameWidth      float64
	FrameColor      color.Color
	BackgroundColor color.Color
	Category        string
	Variant         string
	Grain           float64
	Vignette        float64
}

func DefaultOptions() Options {
	return Options{
		AspectRatio:     1,
		FrameWidth:      0,
		FrameColor:      color.White,
		BackgroundColor: color.Black,
		Category:        filters.NoneCategory,
	}
}

func (o Options) params(src image.Image) (pipeline.EditParameters, error) {
	m, err := filters.Resolve(o.Category, o.Variant)
	if err != nil {
		return pipeline.EditParameters{}, &Failure{Reason: ReasonInvalidParameters, Err: err}
	}
	return pipeline.EditParameters{
		Source:            src,
		AspectRatio:       o.AspectRatio,
		FrameWidthPercent: o.FrameWidth,
		FrameColor:        o.FrameColor,
		BackgroundColor:   o.BackgroundColor,
		FilterMatrix:      m,
		Grain:             o.Grain,
		Vignette:          o.Vignette,
	}, nil
}

// Export frames img and returns the PNG bytes. Errors are *Failure.
func Export(img image.Image, opts Options) ([]byte, error) {
	p, err := opts.params(img)
	if err != nil {
		return nil, err
	}
	return pipeline.New().Export(p)
}

func ExportFile(inputPath, outputPath string, opts Options) error {
	p, err := opts.params(nil)
	if err != nil {
		return err
	}
	return pipeline.New().ExportFile(inputPath, outputPath, p)
}

func ReasonOf(err error) Reason {
	return pipeline.ReasonOf(err)
}

func Categories() []string {
	return filters.Categories()
}

func Ratios() []Ratio {
	return frames.Ratios()
}
