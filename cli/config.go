package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/yosuke-furukawa/json5/encoding/json5"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/kinmath/spatialmath"
)

// InputDocument is the json5 document read by --input.
type InputDocument struct {
	Twists []TwistConfig `json:"twists"`
	Theta  *float64      `json:"theta,omitempty"`
}

// TwistConfig describes a single twist. Exactly one of its fields must be set. Transform accepts
// either a homogeneous transform or a Lie algebra element, told apart by its bottom-right entry.
type TwistConfig struct {
	Coordinates []float64               `json:"coordinates,omitempty"`
	Transform   [][]float64             `json:"transform,omitempty"`
	Descriptor  *spatialmath.Descriptor `json:"descriptor,omitempty"`
}

// ReadInputFile reads and parses the input document at path.
func ReadInputFile(path string) (*InputDocument, error) {
	//nolint:gosec
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read input file %q", path)
	}
	return ParseInput(data)
}

// ParseInput parses a json5 input document.
func ParseInput(data []byte) (*InputDocument, error) {
	var doc InputDocument
	if err := json5.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "invalid input document")
	}
	return &doc, nil
}

// Twist builds the twist the config describes.
func (tc TwistConfig) Twist() (*spatialmath.Twist, error) {
	set := 0
	if tc.Coordinates != nil {
		set++
	}
	if tc.Transform != nil {
		set++
	}
	if tc.Descriptor != nil {
		set++
	}
	if set != 1 {
		return nil, errors.Errorf("exactly one of coordinates, transform or descriptor must be set, got %d", set)
	}

	switch {
	case tc.Coordinates != nil:
		return spatialmath.FromCoordinates(tc.Coordinates)
	case tc.Transform != nil:
		m, err := denseFromRows(tc.Transform)
		if err != nil {
			return nil, err
		}
		return spatialmath.FromMatrix(m)
	default:
		return spatialmath.FromDescriptor(*tc.Descriptor)
	}
}

// Build returns the twists of every valid entry along with the combined errors of the invalid
// ones, each prefixed by its index.
func (doc *InputDocument) Build() ([]*spatialmath.Twist, error) {
	var (
		twists []*spatialmath.Twist
		errs   error
	)
	for i, tc := range doc.Twists {
		twist, err := tc.Twist()
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "twist %d", i))
			continue
		}
		twists = append(twists, twist)
	}
	return twists, errs
}

func denseFromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 {
		return nil, errors.New("transform must have at least one row")
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.Errorf("transform row %d has %d columns, expected %d", i, len(row), cols)
		}
		data = append(data, row...)
	}
	if cols == 0 {
		return nil, errors.New("transform rows must not be empty")
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// parseCoordinates parses a list of twists written as numbers separated by commas or spaces, with
// twists separated by semicolons, e.g. "1,0,0,0,0,1; 0 0 1".
func parseCoordinates(s string) ([]TwistConfig, error) {
	var (
		configs []TwistConfig
		errs    error
	)
	for i, group := range strings.Split(s, ";") {
		fields := strings.FieldsFunc(group, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) == 0 {
			continue
		}
		coords := make([]float64, 0, len(fields))
		for _, f := range fields {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				errs = multierr.Append(errs, errors.Wrapf(err, "coordinates %d", i))
				coords = nil
				break
			}
			coords = append(coords, x)
		}
		if coords != nil {
			configs = append(configs, TwistConfig{Coordinates: coords})
		}
	}
	return configs, errs
}
