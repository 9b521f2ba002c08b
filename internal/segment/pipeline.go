package segment

import (
	"errors"
	"fmt"
	"image"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
)

// ErrNilSource is returned by New when no source image is given.
var ErrNilSource = errors.New("segment: source image is nil")

// DefaultSeed seeds the colour generator when no other seed is configured.
const DefaultSeed int64 = 0

// Options configures a Pipeline.
type Options struct {
	// Seed initialises the random source that picks region colours.
	Seed int64
	// Logger receives stage timings and counts.
	Logger hclog.Logger
}

// DefaultOptions returns the options New starts from.
func DefaultOptions() Options {
	return Options{
		Seed:   DefaultSeed,
		Logger: hclog.NewNullLogger(),
	}
}

// Validate validates the pipeline options.
func (o Options) Validate() error {
	if o.Logger == nil {
		return fmt.Errorf("logger cannot be nil")
	}
	return nil
}

// Option mutates Options.
type Option func(*Options)

// WithSeed sets the colour seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithLogger sets the logger. A nil logger fails validation.
func WithLogger(logger hclog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// Pipeline derives the grayscale, binary and segmented views of one source
// image. Each view is computed on first request and kept for the lifetime of
// the Pipeline; concurrent first requests compute it once and all observe the
// same result.
//
// The source must not be modified after New returns. Views derived from a
// modified source are undefined.
type Pipeline struct {
	source image.Image
	opts   Options
	log    hclog.Logger

	grayOnce sync.Once
	gray     *image.Gray

	thresholdOnce sync.Once
	histogram     Histogram
	threshold     uint8

	binaryOnce sync.Once
	binary     *image.Gray

	regionsOnce sync.Once
	runs        []Run
	forest      *Forest

	segmentedOnce sync.Once
	segmented     *image.RGBA
	components    []Component
}

// New returns a Pipeline over src.
func New(src image.Image, opts ...Option) (*Pipeline, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pipeline options: %w", err)
	}

	return &Pipeline{
		source: src,
		opts:   o,
		log:    o.Logger.Named("segment"),
	}, nil
}

// Source returns the image the pipeline was built from.
func (p *Pipeline) Source() image.Image {
	return p.source
}

// Seed returns the seed used for region colours.
func (p *Pipeline) Seed() int64 {
	return p.opts.Seed
}

// Grayscale returns the luminance view of the source.
func (p *Pipeline) Grayscale() *image.Gray {
	p.grayOnce.Do(func() {
		start := time.Now()
		p.gray = Grayscale(p.source)
		b := p.gray.Bounds()
		p.log.Debug("grayscale computed", "width", b.Dx(), "height", b.Dy(), "elapsed", time.Since(start))
	})
	return p.gray
}

// Histogram returns the intensity histogram of the grayscale view.
func (p *Pipeline) Histogram() Histogram {
	p.computeThreshold()
	return p.histogram
}

// Threshold returns the Otsu threshold of the grayscale view.
func (p *Pipeline) Threshold() uint8 {
	p.computeThreshold()
	return p.threshold
}

func (p *Pipeline) computeThreshold() {
	p.thresholdOnce.Do(func() {
		gray := p.Grayscale()
		start := time.Now()
		p.histogram = NewHistogram(gray)
		p.threshold = OtsuThreshold(p.histogram)
		p.log.Debug("threshold selected", "threshold", p.threshold, "pixels", p.histogram.Total(), "elapsed", time.Since(start))
	})
}

// Binary returns the black and white view: pixels brighter than the
// threshold are Foreground, all others Background.
func (p *Pipeline) Binary() *image.Gray {
	p.binaryOnce.Do(func() {
		gray := p.Grayscale()
		threshold := p.Threshold()
		start := time.Now()
		p.binary = Binarize(gray, threshold)
		p.log.Debug("binary computed", "threshold", threshold, "elapsed", time.Since(start))
	})
	return p.binary
}

func (p *Pipeline) computeRegions() {
	p.regionsOnce.Do(func() {
		bin := p.Binary()
		start := time.Now()
		p.runs = ExtractRuns(bin)
		p.forest = NewForest(p.runs)
		merged := p.forest.Merge()
		p.forest.Flatten()
		p.log.Debug("runs merged", "runs", len(p.runs), "unions", merged, "elapsed", time.Since(start))
	})
}

// Runs returns a copy of the foreground runs in scan order.
func (p *Pipeline) Runs() []Run {
	p.computeRegions()
	return slices.Clone(p.runs)
}

// Forest returns a copy of the merged run forest.
func (p *Pipeline) Forest() *Forest {
	p.computeRegions()
	return p.forest.Clone()
}

// Segmented returns the labelled view, in which every connected region is
// painted in its own colour on a black background.
func (p *Pipeline) Segmented() *image.RGBA {
	p.computeSegmented()
	return p.segmented
}

// Components returns a copy of the connected regions, ordered by the scan
// position of their roots.
func (p *Pipeline) Components() []Component {
	p.computeSegmented()
	return slices.Clone(p.components)
}

// Summary returns area statistics for the connected regions.
func (p *Pipeline) Summary() Summary {
	p.computeSegmented()
	return Summarise(p.components)
}

func (p *Pipeline) computeSegmented() {
	p.segmentedOnce.Do(func() {
		p.computeRegions()
		b := p.Binary().Bounds()
		start := time.Now()
		// #nosec G404 -- colours must be reproducible, not unpredictable
		rng := rand.New(rand.NewSource(p.opts.Seed))
		p.segmented, p.components = Colourise(b.Dx(), b.Dy(), p.forest, rng)
		p.log.Debug("regions coloured", "components", len(p.components), "seed", p.opts.Seed, "elapsed", time.Since(start))
	})
}
