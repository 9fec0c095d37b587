package locate

import (
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

func (r *Resolver) resolveEnabled(target Target) (playwright.Locator, error) {
	loc, err := r.Resolve(target)
	if err != nil {
		return nil, err
	}
	enabled, err := loc.IsEnabled()
	if err != nil {
		return nil, fmt.Errorf("%s: could not read enabled state: %w", target.Describe(), err)
	}
	if !enabled {
		return nil, fmt.Errorf("%s: element visible but disabled", target.Describe())
	}
	return loc, nil
}

// Click clicks the target. The element must become visible and enabled
// within the probe window.
func (r *Resolver) Click(target Target) error {
	loc, err := r.resolveEnabled(target)
	if err != nil {
		return err
	}
	if err := loc.Click(); err != nil {
		return fmt.Errorf("%s: click failed: %w", target.Describe(), err)
	}
	return nil
}

// Fill replaces the target's value.
func (r *Resolver) Fill(target Target, value string) error {
	loc, err := r.resolveEnabled(target)
	if err != nil {
		return err
	}
	if err := loc.Fill(value); err != nil {
		return fmt.Errorf("%s: fill failed: %w", target.Describe(), err)
	}
	return nil
}

// SelectOption selects the option with the given value or label.
func (r *Resolver) SelectOption(target Target, value string) error {
	loc, err := r.resolveEnabled(target)
	if err != nil {
		return err
	}
	_, err = loc.SelectOption(playwright.SelectOptionValues{Values: &[]string{value}})
	if err != nil {
		// Custom comboboxes register labels, not values.
		_, err = loc.SelectOption(playwright.SelectOptionValues{Labels: &[]string{value}})
	}
	if err != nil {
		return fmt.Errorf("%s: select %q failed: %w", target.Describe(), value, err)
	}
	return nil
}

// Check checks the target checkbox or radio.
func (r *Resolver) Check(target Target) error {
	loc, err := r.resolveEnabled(target)
	if err != nil {
		return err
	}
	if err := loc.Check(); err != nil {
		return fmt.Errorf("%s: check failed: %w", target.Describe(), err)
	}
	return nil
}

// ClickIfVisible clicks the target when it appears within the probe
// window and reports whether it did. Absence is not an error: optional
// UI affordances degrade to a no-op.
func (r *Resolver) ClickIfVisible(target Target) (bool, error) {
	loc, err := r.resolveEnabled(target)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := loc.Click(); err != nil {
		return false, fmt.Errorf("%s: click failed: %w", target.Describe(), err)
	}
	return true, nil
}

// FillIfVisible fills the target when present, reporting whether it did.
func (r *Resolver) FillIfVisible(target Target, value string) (bool, error) {
	loc, err := r.resolveEnabled(target)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := loc.Fill(value); err != nil {
		return false, fmt.Errorf("%s: fill failed: %w", target.Describe(), err)
	}
	return true, nil
}

// CheckIfVisible checks the target when present, reporting whether it did.
func (r *Resolver) CheckIfVisible(target Target) (bool, error) {
	loc, err := r.resolveEnabled(target)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := loc.Check(); err != nil {
		return false, fmt.Errorf("%s: check failed: %w", target.Describe(), err)
	}
	return true, nil
}
