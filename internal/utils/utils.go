package utils

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/ironlog/internal/models"
)

func ParseTemplateFromTOML(path string) (*models.TemplateTOML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tpl models.TemplateTOML
	if err := toml.Unmarshal(data, &tpl); err != nil {
		return nil, err
	}

	return &tpl, nil
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
