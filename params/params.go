// Package params reads contact-problem parameters from a YAML input file.
package params

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type Parameters struct {
	Title            string  `yaml:"Title"`
	Gamma            float64 `yaml:"Gamma"`   // Nitsche penalization parameter
	Theta            float64 `yaml:"Theta"`   // Nitsche symmetry switch: 1 symmetric, -1 antisymmetric, 0 penalty-like
	Penalty          float64 `yaml:"Penalty"` // Spring stiffness for penalty tie kernels
	QuadratureDegree int     `yaml:"QuadratureDegree"`
	Surfaces         [2]int  `yaml:"Surfaces"` // Marker tags of the two contact surfaces
	MaxIterations    int     `yaml:"MaxIterations"`
	Tolerance        float64 `yaml:"Tolerance"`
}

// Defaults returns the parameter values used when a field is absent from the
// input file.
func Defaults() Parameters {
	return Parameters{
		Title:            "contact",
		Gamma:            10,
		Theta:            1,
		Penalty:          1,
		QuadratureDegree: 3,
		Surfaces:         [2]int{1, 2},
		MaxIterations:    50,
		Tolerance:        1e-9,
	}
}

// Parse fills p from YAML data, keeping existing values for absent fields.
func (p *Parameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, p)
}

// ReadFile loads parameters from a YAML file on top of the defaults.
func ReadFile(path string) (Parameters, error) {
	p := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("unable to read parameter file: %w", err)
	}
	if err := p.Parse(data); err != nil {
		return p, fmt.Errorf("unable to parse parameter file %s: %w", path, err)
	}
	return p, nil
}

// Print writes a human-readable summary to stdout.
func (p *Parameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", p.Title)
	fmt.Printf("%8.5f\t\t= Gamma\n", p.Gamma)
	fmt.Printf("%8.5f\t\t= Theta\n", p.Theta)
	fmt.Printf("%8.5f\t\t= Penalty\n", p.Penalty)
	fmt.Printf("[%d]\t\t\t= Quadrature Degree\n", p.QuadratureDegree)
	fmt.Printf("[%d %d]\t\t\t= Surface Tags\n", p.Surfaces[0], p.Surfaces[1])
}
