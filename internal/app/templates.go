package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/misterclayt0n/ironlog/internal/templates"
)

// SaveTemplate validates and stores the draft. A rejected draft is never persisted.
func (s *Session) SaveTemplate(ctx context.Context, d *templates.Draft) (models.Template, error) {
	var saved models.Template
	err := s.mutate(ctx, "save-template", func(data *models.ProfileData, _ time.Time) (string, error) {
		list, tpl, err := templates.Save(data.Templates, d)
		if err != nil {
			return "", err
		}
		data.Templates, saved = list, tpl
		return fmt.Sprintf("Template %q saved", tpl.Name), nil
	})
	return saved, err
}

// ImportTemplate builds a template from a TOML definition. A template with the
// same name is only overwritten when replace is set.
func (s *Session) ImportTemplate(ctx context.Context, src *models.TemplateTOML, replace bool) (models.Template, error) {
	d, err := templates.DraftFromTOML(src, s.lib.Exercise)
	if err != nil {
		s.notifier.Toast(err.Error())
		return models.Template{}, err
	}

	var saved models.Template
	err = s.mutate(ctx, "import-template", func(data *models.ProfileData, _ time.Time) (string, error) {
		for _, t := range data.Templates {
			if !strings.EqualFold(t.Name, strings.TrimSpace(d.Name)) {
				continue
			}
			if !replace {
				return "", models.Precondition("template %q already exists", t.Name)
			}
			d.ID = t.ID
		}
		list, tpl, err := templates.Save(data.Templates, d)
		if err != nil {
			return "", err
		}
		data.Templates, saved = list, tpl
		return fmt.Sprintf("Template %q imported", tpl.Name), nil
	})
	return saved, err
}

// EditTemplate reopens a saved template as a draft, applies edit and saves it back.
func (s *Session) EditTemplate(ctx context.Context, ref string, edit func(d *templates.Draft) error) (models.Template, error) {
	var saved models.Template
	err := s.mutate(ctx, "edit-template", func(data *models.ProfileData, _ time.Time) (string, error) {
		tpl, ok := templates.Find(data.Templates, ref)
		if !ok {
			return "", models.Precondition("template %q not found", ref)
		}
		d := templates.DraftFrom(tpl)
		if err := edit(d); err != nil {
			return "", err
		}
		list, out, err := templates.Save(data.Templates, d)
		if err != nil {
			return "", err
		}
		data.Templates, saved = list, out
		return fmt.Sprintf("Template %q saved", out.Name), nil
	})
	return saved, err
}

func (s *Session) DuplicateTemplate(ctx context.Context, ref string) (models.Template, error) {
	var cp models.Template
	err := s.mutate(ctx, "duplicate-template", func(data *models.ProfileData, _ time.Time) (string, error) {
		tpl, ok := templates.Find(data.Templates, ref)
		if !ok {
			return "", models.Precondition("template %q not found", ref)
		}
		list, out, err := templates.Duplicate(data.Templates, tpl.ID)
		if err != nil {
			return "", err
		}
		data.Templates, cp = list, out
		return fmt.Sprintf("Template %q created", out.Name), nil
	})
	return cp, err
}

func (s *Session) DeleteTemplate(ctx context.Context, ref string, confirm bool) error {
	return s.mutate(ctx, "delete-template", func(data *models.ProfileData, _ time.Time) (string, error) {
		tpl, ok := templates.Find(data.Templates, ref)
		if !ok {
			return "", models.Precondition("template %q not found", ref)
		}
		list, err := templates.Delete(data.Templates, tpl.ID, confirm)
		if err != nil {
			return "", err
		}
		data.Templates = list
		return fmt.Sprintf("Template %q deleted", tpl.Name), nil
	})
}

// Template returns a copy of the template with the given id or name.
func (s *Session) Template(ref string) (models.Template, bool) {
	s.lock()
	defer s.unlock()
	tpl, ok := templates.Find(s.data.Templates, ref)
	if !ok {
		return models.Template{}, false
	}
	return tpl.Clone(), true
}
