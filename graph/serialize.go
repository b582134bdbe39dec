package graph

import "encoding/json"

// Sentinel values the output surface serializes in place of a missing
// optional field, per spec §6.
const (
	sentinelNumber = "-999.9"
	sentinelText   = "None"
)

// nodeJSON and edgeJSON are the wire shapes MarshalJSON produces; every
// optional field becomes a sentinel string rather than JSON null, since
// that is the contract spec §6 documents for the serializer collaborator.
type nodeJSON struct {
	ID                 string      `json:"id"`
	Chain              string      `json:"chain"`
	SequenceNumber     int         `json:"sequence_number"`
	Name               string      `json:"name"`
	X                  float64     `json:"x"`
	Y                  float64     `json:"y"`
	Z                  float64     `json:"z"`
	BFactorCA          interface{} `json:"bfactor_ca"`
	SecondaryStructure string      `json:"secondary_structure"`
	ProteinName        string      `json:"protein_name"`
	Degree             int         `json:"degree"`
}

// MarshalJSON implements json.Marshaler, substituting the numeric
// sentinel for a nil BFactorCA.
func (n Node) MarshalJSON() ([]byte, error) {
	var bfactor interface{} = sentinelNumber
	if n.BFactorCA != nil {
		bfactor = *n.BFactorCA
	}
	return json.Marshal(nodeJSON{
		ID:                 n.ID,
		Chain:              n.Chain,
		SequenceNumber:     n.SequenceNumber,
		Name:               n.Name,
		X:                  n.X,
		Y:                  n.Y,
		Z:                  n.Z,
		BFactorCA:          bfactor,
		SecondaryStructure: n.SecondaryStructure,
		ProteinName:        n.ProteinName,
		Degree:             n.Degree,
	})
}

type edgeJSON struct {
	SourceID         string      `json:"source_id"`
	TargetID         string      `json:"target_id"`
	Length           float64     `json:"length"`
	Energy           float64     `json:"energy"`
	InteractionLabel string      `json:"interaction_label"`
	SourceAtom       string      `json:"source_atom"`
	TargetAtom       string      `json:"target_atom"`
	Angle            interface{} `json:"angle"`
	Donor            interface{} `json:"donor"`
	Cation           interface{} `json:"cation"`
	Positive         interface{} `json:"positive"`
	Orientation      interface{} `json:"orientation"`
}

// MarshalJSON implements json.Marshaler, substituting the documented
// sentinel for each unset kind-specific field.
func (e Edge) MarshalJSON() ([]byte, error) {
	out := edgeJSON{
		SourceID:         e.SourceID,
		TargetID:         e.TargetID,
		Length:           e.Length,
		Energy:           e.Energy,
		InteractionLabel: e.InteractionLabel,
		SourceAtom:       e.SourceAtom,
		TargetAtom:       e.TargetAtom,
		Angle:            numberOrSentinel(e.Angle),
		Donor:            textOrSentinel(e.Donor),
		Cation:           textOrSentinel(e.Cation),
		Positive:         textOrSentinel(e.Positive),
		Orientation:      textOrSentinel(e.Orientation),
	}
	return json.Marshal(out)
}

func numberOrSentinel(v *float64) interface{} {
	if v == nil {
		return sentinelNumber
	}
	return *v
}

func textOrSentinel(v *string) interface{} {
	if v == nil {
		return sentinelText
	}
	return *v
}
