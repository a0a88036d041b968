package separation

import (
	"errors"
	"fmt"
)

// Model selects the empirical correlation used to split global irradiance
type Model int

const (
	// Nagata solves atmospheric transmittance and applies Nagata's diffuse formula
	Nagata Model = iota + 1
	// Watanabe solves atmospheric transmittance and applies Watanabe's diffuse formula
	Watanabe
	// Erbs estimates diffuse irradiance from the clearness index
	Erbs
	// Udagawa estimates direct normal irradiance from the clearness index
	Udagawa
	// Perez estimates direct normal irradiance from a three-hour window
	Perez
)

var modelNames = map[Model]string{
	Nagata:   "Nagata",
	Watanabe: "Watanabe",
	Erbs:     "Erbs",
	Udagawa:  "Udagawa",
	Perez:    "Perez",
}

// ErrUnknownModel is wrapped by the ConfigurationError returned for an unrecognized model name
var ErrUnknownModel = errors.New("unknown separation model")

func (m Model) String() string {
	if name, ok := modelNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Model(%d)", int(m))
}

// producesDiffuse reports whether the model estimates diffuse irradiance
// directly, leaving direct normal irradiance to be derived.
func (m Model) producesDiffuse() bool {
	return m == Nagata || m == Watanabe || m == Erbs
}

// ParseModel maps a model name to its Model. Names are case-sensitive.
func ParseModel(name string) (Model, error) {
	for m, n := range modelNames {
		if n == name {
			return m, nil
		}
	}
	return 0, &ConfigurationError{
		Setting: "model",
		Value:   name,
		Reason:  "must be one of Nagata, Watanabe, Erbs, Udagawa, Perez",
		Err:     ErrUnknownModel,
	}
}

// ConfigurationError reports a setting that prevents a separation from starting
type ConfigurationError struct {
	Setting string
	Value   string
	Reason  string
	Err     error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Setting, e.Value, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
