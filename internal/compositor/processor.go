package compositor

import (
	"errors"
	"image"
	"os"

	"github.com/backmassage/texbake/internal/planner"
	"github.com/backmassage/texbake/internal/probe"
)

// Processor executes plans. The zero value is not usable; call NewProcessor.
type Processor struct {
	Codec Codec
	Bake  BakeOptions
}

// NewProcessor returns a Processor using ImagingCodec and the given sharpen
// sigma.
func NewProcessor(sharpenSigma float64) *Processor {
	return &Processor{
		Codec: ImagingCodec{},
		Bake:  BakeOptions{SharpenSigma: sharpenSigma},
	}
}

// Process runs every action in plan. A failing action does not prevent the
// others; all failures are joined.
func (p *Processor) Process(plan *planner.Plan) error {
	var errs []error
	for _, a := range plan.Actions {
		switch a {
		case planner.ActionComposite:
			errs = append(errs, p.ProcessBundle(plan))
		case planner.ActionConvert:
			errs = append(errs, p.ConvertSingle(plan))
		}
	}
	return errors.Join(errs...)
}

// ProcessBundle bakes a complete albedo/parameter/normal set.
//
// Flow:
//  1. All three sources must exist
//  2. Albedo and parameter headers must agree on size
//  3. Create the output directory
//  4. Decode, bake, and write albedo, parameter and normal
func (p *Processor) ProcessBundle(plan *planner.Plan) error {
	in, out := plan.Inputs, plan.Outputs
	if err := checkSources(in.Albedo, in.Parameter, in.Normal); err != nil {
		return err
	}

	ai, err := probe.Probe(in.Albedo)
	if err != nil {
		return ioError("read header", err, in.Albedo)
	}
	pi, err := probe.Probe(in.Parameter)
	if err != nil {
		return ioError("read header", err, in.Parameter)
	}
	if !probe.SameSize(ai, pi) {
		return validationf([]string{in.Albedo, in.Parameter},
			"albedo is %dx%d but parameter is %dx%d", ai.Width, ai.Height, pi.Width, pi.Height)
	}

	if err := mkdirOutput(plan.OutputDir); err != nil {
		return err
	}

	albedo, err := p.decode(in.Albedo)
	if err != nil {
		return err
	}
	param, err := p.decode(in.Parameter)
	if err != nil {
		return err
	}
	normal, err := p.decode(in.Normal)
	if err != nil {
		return err
	}

	baked, err := Bake(albedo, param, p.Bake)
	if err != nil {
		return err
	}

	if err := p.encode(baked, out.Albedo); err != nil {
		return err
	}
	if err := p.encode(param, out.Parameter); err != nil {
		return err
	}
	return p.encode(normal, out.Normal)
}

// ConvertSingle re-encodes the unclassified file of plan as PNG.
func (p *Processor) ConvertSingle(plan *planner.Plan) error {
	if err := checkSources(plan.Inputs.Other); err != nil {
		return err
	}
	if err := mkdirOutput(plan.OutputDir); err != nil {
		return err
	}
	img, err := p.decode(plan.Inputs.Other)
	if err != nil {
		return err
	}
	return p.encode(img, plan.Outputs.Other)
}

func (p *Processor) decode(path string) (*image.NRGBA, error) {
	img, err := p.Codec.Decode(path)
	if err != nil {
		return nil, ioError("decode", err, path)
	}
	return img, nil
}

func (p *Processor) encode(img image.Image, path string) error {
	if err := p.Codec.Encode(img, path); err != nil {
		return ioError("encode", err, path)
	}
	return nil
}

// checkSources reports every missing path in one validation error.
func checkSources(paths ...string) error {
	var missing []string
	for _, path := range paths {
		_, err := os.Stat(path)
		switch {
		case err == nil:
		case errors.Is(err, os.ErrNotExist):
			missing = append(missing, path)
		default:
			return ioError("stat", err, path)
		}
	}
	if len(missing) > 0 {
		return validationf(missing, "missing source %s", plural(len(missing), "file"))
	}
	return nil
}

// mkdirOutput creates dir. It is safe to race with other workers creating
// the same directory.
func mkdirOutput(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ioError("create output directory", err, dir)
	}
	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
