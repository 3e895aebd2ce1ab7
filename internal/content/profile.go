// Package content holds the static portfolio data the built-in commands print.
//
// The default profile is embedded from profile.yaml; a replacement file with
// the same shape can be loaded with [Load].
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var defaultProfile []byte

var ErrIncomplete = errors.New("content: profile is missing required fields")

type Profile struct {
	Identity Identity  `yaml:"identity"`
	Welcome  Welcome   `yaml:"welcome"`
	System   System    `yaml:"system"`
	Projects []Project `yaml:"projects"`
	Skills   Skills    `yaml:"skills"`
	Whoami   []Field   `yaml:"whoami"`
	About    About     `yaml:"about"`
	Contacts []Contact `yaml:"contacts"`
	Links    Links     `yaml:"links"`
	Servers  Servers   `yaml:"servers"`
	Quotes   []string  `yaml:"quotes"`
	Banner   Banner    `yaml:"banner"`
}

type Identity struct {
	User  string `yaml:"user"`
	Host  string `yaml:"host"`
	Path  string `yaml:"path"`
	Title string `yaml:"title"`
}

type Welcome struct {
	Frame []string `yaml:"frame"`
	Hints []Hint   `yaml:"hints"`
}

type Hint struct {
	Command string `yaml:"command"`
	Text    string `yaml:"text"`
}

type System struct {
	Logo   string  `yaml:"logo"`
	Header string  `yaml:"header"`
	Info   []Field `yaml:"info"`
}

type Field struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type Project struct {
	Type    string `yaml:"type"`
	Name    string `yaml:"name"`
	Desc    string `yaml:"desc"`
	Link    string `yaml:"link,omitempty"`
	Dir     string `yaml:"dir,omitempty"`
	DirLink string `yaml:"dir_link,omitempty"`
}

// ListingLink is the link shown for the project's directory entry.
func (p Project) ListingLink() string {
	if p.DirLink != "" {
		return p.DirLink
	}
	return p.Link
}

type Skills struct {
	Primary string   `yaml:"primary"`
	Tags    []string `yaml:"tags"`
}

type About struct {
	Intro    string         `yaml:"intro"`
	Sections []AboutSection `yaml:"sections"`
}

type AboutSection struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

type Contact struct {
	Icon  string `yaml:"icon"`
	Label string `yaml:"label"`
	Text  string `yaml:"text"`
	Link  string `yaml:"link"`
}

type Links struct {
	GitHub   string `yaml:"github"`
	Telegram string `yaml:"telegram"`
}

type Servers struct {
	Count int       `yaml:"count"`
	Load  []float64 `yaml:"load"`
}

type Banner struct {
	Art     string `yaml:"art"`
	Tagline string `yaml:"tagline"`
}

// Default returns the embedded profile. It panics if the embedded file is
// malformed, which can only happen through a broken build.
func Default() *Profile {
	p, err := Parse(defaultProfile)
	if err != nil {
		panic(err)
	}
	return p
}

// Load reads a profile file from disk.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read profile: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("content: parse profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the fields commands cannot render without.
func (p *Profile) Validate() error {
	switch {
	case p.Identity.User == "" || p.Identity.Host == "":
		return fmt.Errorf("%w: identity.user and identity.host", ErrIncomplete)
	case len(p.Quotes) == 0:
		return fmt.Errorf("%w: quotes", ErrIncomplete)
	case p.Servers.Count < 0:
		return fmt.Errorf("%w: servers.count must not be negative", ErrIncomplete)
	}
	if p.Identity.Path == "" {
		p.Identity.Path = "~"
	}
	return nil
}
