// Package portfolio loads the page document: display strings, contact
// details and the ordered list of projects shown in the gallery.
package portfolio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned (wrapped) when a document parses but is
// missing required values.
var ErrInvalidConfig = errors.New("invalid page config")

// Project is one gallery entry. Immutable once loaded.
type Project struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	Category    string `yaml:"category"`
}

// Field is the label and placeholder of one contact form input.
type Field struct {
	Label       string `yaml:"label"`
	Placeholder string `yaml:"placeholder"`
}

// Contacts holds the contact form strings.
type Contacts struct {
	Title   string `yaml:"title"`
	Name    Field  `yaml:"name"`
	Email   Field  `yaml:"email"`
	Message Field  `yaml:"message"`
	Button  string `yaml:"button"`
}

// Toasts holds the three notification messages of the submit flow.
type Toasts struct {
	Loading string `yaml:"loading"`
	Success string `yaml:"success"`
	Error   string `yaml:"error"`
}

// Page holds page-level display strings.
type Page struct {
	Title    string   `yaml:"title"`
	Contacts Contacts `yaml:"contacts"`
	Toast    Toasts   `yaml:"toast"`
}

// Contact is the contact-info triple. Email also addresses the form relay.
type Contact struct {
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Location string `yaml:"location"`
}

// Config is the whole page document.
type Config struct {
	Page     Page      `yaml:"page"`
	Contact  Contact   `yaml:"contact"`
	Projects []Project `yaml:"projects"`
}

// Load reads and validates the document at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read page config %s: %w", path, err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("page config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a document strictly (unknown keys are rejected) and
// validates it.
func Parse(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: document is empty", ErrInvalidConfig)
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values the page cannot render or submit without.
func (c *Config) Validate() error {
	var errs []error
	if c.Page.Title == "" {
		errs = append(errs, errors.New("page.title is required"))
	}
	if c.Contact.Email == "" {
		errs = append(errs, errors.New("contact.email is required"))
	}
	if c.Page.Toast.Loading == "" {
		errs = append(errs, errors.New("page.toast.loading is required"))
	}
	if c.Page.Toast.Success == "" {
		errs = append(errs, errors.New("page.toast.success is required"))
	}
	if c.Page.Toast.Error == "" {
		errs = append(errs, errors.New("page.toast.error is required"))
	}

	seen := make(map[int]int, len(c.Projects))
	for i, p := range c.Projects {
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("projects[%d].title is required", i))
		}
		if prev, ok := seen[p.ID]; ok {
			errs = append(errs, fmt.Errorf("projects[%d].id %d duplicates projects[%d]", i, p.ID, prev))
			continue
		}
		seen[p.ID] = i
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
