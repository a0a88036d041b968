package responseformat

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/chrissnell/irradiance/pkg/separation"
)

// Format selects the encoding used to hand a series to the next stage
type Format int

const (
	// JSON is the default format. Missing values are written as null.
	JSON Format = iota
	// MsgPack carries missing values as NaN
	MsgPack
)

// ParseFormat maps a format name to its Format. An empty name selects JSON.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "", "json":
		return JSON, nil
	case "msgpack":
		return MsgPack, nil
	default:
		return JSON, fmt.Errorf("unknown format %q", name)
	}
}

// ContentType returns the media type of the format
func (f Format) ContentType() string {
	if f == MsgPack {
		return "application/x-msgpack"
	}
	return "application/json"
}

func (f Format) String() string {
	if f == MsgPack {
		return "msgpack"
	}
	return "json"
}

// Formatter handles encoding and decoding series in JSON or MessagePack format
type Formatter struct{}

// NewFormatter creates a new series formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Encode writes the series to w in the given format
func (f *Formatter) Encode(w io.Writer, s *separation.Series, format Format) error {
	wire := toWire(s)

	if format == MsgPack {
		return f.writeMsgPack(w, wire)
	}
	return f.writeJSON(w, wire)
}

// Decode reads a series in the given format from r
func (f *Formatter) Decode(r io.Reader, format Format) (*separation.Series, error) {
	var wire wireSeries

	var err error
	if format == MsgPack {
		decoder := msgpack.NewDecoder(r)
		decoder.SetCustomStructTag("json") // Use json tags for MessagePack
		err = decoder.Decode(&wire)
	} else {
		err = json.NewDecoder(r).Decode(&wire)
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode %s series: %w", format, err)
	}

	return fromWire(&wire)
}

func (f *Formatter) writeJSON(w io.Writer, data any) error {
	return json.NewEncoder(w).Encode(data)
}

func (f *Formatter) writeMsgPack(w io.Writer, data any) error {
	encoder := msgpack.NewEncoder(w)
	encoder.SetCustomStructTag("json") // Use json tags for MessagePack
	encoder.SetSortMapKeys(true)
	return encoder.Encode(data)
}

// wireSeries is the encoded form of a separation.Series. Timestamps travel
// as RFC 3339 text so their wall clock and offset survive either format.
type wireSeries struct {
	Times    []string                     `json:"times"`
	Global   map[separation.Source]Values `json:"global"`
	DewPoint Values                       `json:"dew_point,omitempty"`
	Direct   map[separation.Source]Values `json:"direct,omitempty"`
	Diffuse  map[separation.Source]Values `json:"diffuse,omitempty"`
	Altitude Values                       `json:"altitude,omitempty"`
	Azimuth  Values                       `json:"azimuth,omitempty"`
}

func toWire(s *separation.Series) *wireSeries {
	wire := &wireSeries{
		Times:    make([]string, len(s.Times)),
		Global:   toWireColumns(s.Global),
		DewPoint: Values(s.DewPoint),
		Direct:   toWireColumns(s.Direct),
		Diffuse:  toWireColumns(s.Diffuse),
		Altitude: Values(s.Altitude),
		Azimuth:  Values(s.Azimuth),
	}

	for i, t := range s.Times {
		wire.Times[i] = t.Format(time.RFC3339)
	}
	return wire
}

func fromWire(wire *wireSeries) (*separation.Series, error) {
	s := &separation.Series{
		Times:    make([]time.Time, len(wire.Times)),
		Global:   fromWireColumns(wire.Global),
		DewPoint: []float64(wire.DewPoint),
		Direct:   fromWireColumns(wire.Direct),
		Diffuse:  fromWireColumns(wire.Diffuse),
		Altitude: []float64(wire.Altitude),
		Azimuth:  []float64(wire.Azimuth),
	}

	for i, text := range wire.Times {
		t, err := time.Parse(time.RFC3339, text)
		if err != nil {
			return nil, fmt.Errorf("timestamp %d: %w", i, err)
		}
		s.Times[i] = t
	}
	return s, nil
}

func toWireColumns(columns map[separation.Source][]float64) map[separation.Source]Values {
	if columns == nil {
		return nil
	}
	out := make(map[separation.Source]Values, len(columns))
	for src, v := range columns {
		out[src] = Values(v)
	}
	return out
}

func fromWireColumns(columns map[separation.Source]Values) map[separation.Source][]float64 {
	if columns == nil {
		return nil
	}
	out := make(map[separation.Source][]float64, len(columns))
	for src, v := range columns {
		out[src] = []float64(v)
	}
	return out
}
