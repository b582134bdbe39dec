package rin

import (
	"github.com/polyrin/rin/chem"
	"github.com/polyrin/rin/residue"
)

// MaxDistance is the hard ceiling every distance-valued option clamps
// into, per spec §6's option table footnote.
const MaxDistance = 20.0

// minSequenceSeparation is the floor sequence_separation must clear; a
// caller supplying less gets InvalidParameterError rather than a silent
// clamp, since shrinking it changes which residue pairs are even
// considered rather than just how far a search radius reaches.
const minSequenceSeparation = 3

// InteractionType selects the pipeline branch ComputeRIN runs.
type InteractionType int

const (
	NonCovalent InteractionType = iota
	ContactMap
)

// CmapType selects which backbone carbon a ContactMap run searches over.
type CmapType int

const (
	CmapAlpha CmapType = iota
	CmapBeta
)

// NetworkPolicy selects which Aggregator projection ComputeRIN uses.
type NetworkPolicy int

const (
	PolicyAll NetworkPolicy = iota
	PolicyBestPerType
	PolicyBestOne
)

// Params is the immutable configuration record passed to ComputeRIN. It
// is built once by DefaultParams and optional functional options and
// never mutated afterward.
type Params struct {
	InteractionType InteractionType
	CmapType        CmapType
	NetworkPolicy   NetworkPolicy

	SequenceSeparation int

	QueryDistHBond float64
	SurfaceDistVdW float64
	QueryDistIonic float64
	QueryDistPiPi  float64
	QueryDistPiCat float64
	QueryDistCmap  float64

	HBondAngle     float64
	PiCationAngle  float64
	PiPiNormalNormalAngleRange float64
	PiPiNormalCentreAngleRange float64
	MaxPiPiAtomAtomDistance    float64

	HBondRealistic bool

	IllformedPolicy residue.IllformedPolicy

	PiStack chem.PiStackConstants
}

// DefaultParams returns the option table's documented defaults.
func DefaultParams() Params {
	return Params{
		InteractionType: NonCovalent,
		CmapType:        CmapAlpha,
		NetworkPolicy:   PolicyAll,

		SequenceSeparation: 3,

		QueryDistHBond: 3.5,
		SurfaceDistVdW: 0.5,
		QueryDistIonic: 4.0,
		QueryDistPiPi:  6.5,
		QueryDistPiCat: 5.0,
		QueryDistCmap:  6.0,

		HBondAngle:                 63,
		PiCationAngle:              45,
		PiPiNormalNormalAngleRange: 30,
		PiPiNormalCentreAngleRange: 60,
		MaxPiPiAtomAtomDistance:    4.5,

		HBondRealistic: true,

		IllformedPolicy: residue.SkipResidue,

		PiStack: chem.DefaultPiStackConstants,
	}
}

// Option mutates a Params value under construction; it may reject the
// configuration outright by returning a non-nil error.
type Option func(*Params) error

// New builds a Params from DefaultParams plus options, then clamps every
// distance option into [0, MaxDistance].
func New(opts ...Option) (*Params, error) {
	p := DefaultParams()
	for _, opt := range opts {
		if err := opt(&p); err != nil {
			return nil, err
		}
	}
	p.QueryDistHBond = clamp(p.QueryDistHBond)
	p.SurfaceDistVdW = clamp(p.SurfaceDistVdW)
	p.QueryDistIonic = clamp(p.QueryDistIonic)
	p.QueryDistPiPi = clamp(p.QueryDistPiPi)
	p.QueryDistPiCat = clamp(p.QueryDistPiCat)
	p.QueryDistCmap = clamp(p.QueryDistCmap)
	p.MaxPiPiAtomAtomDistance = clamp(p.MaxPiPiAtomAtomDistance)
	return &p, nil
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > MaxDistance {
		return MaxDistance
	}
	return v
}

// WithInteractionType selects NONCOVALENT or CONTACT_MAP.
func WithInteractionType(t InteractionType) Option {
	return func(p *Params) error { p.InteractionType = t; return nil }
}

// WithCmapType selects the contact-map carbon.
func WithCmapType(t CmapType) Option {
	return func(p *Params) error { p.CmapType = t; return nil }
}

// WithNetworkPolicy selects the aggregator projection.
func WithNetworkPolicy(policy NetworkPolicy) Option {
	return func(p *Params) error { p.NetworkPolicy = policy; return nil }
}

// WithSequenceSeparation sets the minimum residue-index gap. n below 3
// is rejected with InvalidParameterError rather than clamped, since it
// changes which pairs are considered at all.
func WithSequenceSeparation(n int) Option {
	return func(p *Params) error {
		if n < minSequenceSeparation {
			return &InvalidParameterError{option: "sequence_separation", value: n, floor: minSequenceSeparation}
		}
		p.SequenceSeparation = n
		return nil
	}
}

// WithQueryDistHBond sets the H-bond donor-acceptor search radius.
func WithQueryDistHBond(d float64) Option {
	return func(p *Params) error { p.QueryDistHBond = d; return nil }
}

// WithSurfaceDistVdW sets the VdW surface-to-surface gap threshold.
func WithSurfaceDistVdW(d float64) Option {
	return func(p *Params) error { p.SurfaceDistVdW = d; return nil }
}

// WithQueryDistIonic sets the ionic group centroid search radius.
func WithQueryDistIonic(d float64) Option {
	return func(p *Params) error { p.QueryDistIonic = d; return nil }
}

// WithQueryDistPiPi sets the ring-ring centroid search radius.
func WithQueryDistPiPi(d float64) Option {
	return func(p *Params) error { p.QueryDistPiPi = d; return nil }
}

// WithQueryDistPiCat sets the cation-ring search radius.
func WithQueryDistPiCat(d float64) Option {
	return func(p *Params) error { p.QueryDistPiCat = d; return nil }
}

// WithQueryDistCmap sets the alpha/beta carbon search radius.
func WithQueryDistCmap(d float64) Option {
	return func(p *Params) error { p.QueryDistCmap = d; return nil }
}

// WithHBondAngle sets the ADH angle threshold, in degrees.
func WithHBondAngle(deg float64) Option {
	return func(p *Params) error { p.HBondAngle = deg; return nil }
}

// WithPiCationAngle sets the theta threshold, in degrees.
func WithPiCationAngle(deg float64) Option {
	return func(p *Params) error { p.PiCationAngle = deg; return nil }
}

// WithHBondRealistic toggles the §4.7 realism filter.
func WithHBondRealistic(enabled bool) Option {
	return func(p *Params) error { p.HBondRealistic = enabled; return nil }
}

// WithIllformedPolicy sets the ring/ionic-group mismatch handling policy.
func WithIllformedPolicy(policy residue.IllformedPolicy) Option {
	return func(p *Params) error { p.IllformedPolicy = policy; return nil }
}

// WithPiStackConstants overrides the placeholder pi-pi energy
// coefficients (see DESIGN.md's open-question note on why the default is
// all-zero).
func WithPiStackConstants(c chem.PiStackConstants) Option {
	return func(p *Params) error { p.PiStack = c; return nil }
}
