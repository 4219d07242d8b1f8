package form

// Validator checks one field value and returns an error message, or "" when
// the value is acceptable. Validators run at blur time and on submit, never
// on every keystroke.
type Validator func(value string, f *Form) string

type field struct {
	value       string
	err         string
	validate    Validator
	revalidates []string
}

// Form holds per-field state for one admin form. Submission is blocked while
// any field carries an error.
type Form struct {
	fields map[string]*field
	order  []string
}

func New() *Form {
	return &Form{fields: make(map[string]*field)}
}

// Add registers a field with its initial value and validator. A nil
// validator means the field is free-form.
func (f *Form) Add(name, initial string, validate Validator) *Form {
	f.fields[name] = &field{value: initial, validate: validate}
	f.order = append(f.order, name)
	return f
}

// Revalidates declares that blurring name re-runs validation on the given
// dependent fields. Used for cross-field rules like date-range ordering.
func (f *Form) Revalidates(name string, dependents ...string) *Form {
	f.fields[name].revalidates = dependents
	return f
}

// Set stores a new value without validating it.
func (f *Form) Set(name, value string) {
	if fl, ok := f.fields[name]; ok {
		fl.value = value
	}
}

// Blur validates the named field, plus any fields it declares as dependent,
// and returns the field's error message.
func (f *Form) Blur(name string) string {
	fl, ok := f.fields[name]
	if !ok {
		return ""
	}
	fl.err = f.run(fl)
	for _, dep := range fl.revalidates {
		if d, ok := f.fields[dep]; ok {
			d.err = f.run(d)
		}
	}
	return fl.err
}

// Value returns the current value of a field.
func (f *Form) Value(name string) string {
	if fl, ok := f.fields[name]; ok {
		return fl.value
	}
	return ""
}

// Error returns the current error message of a field.
func (f *Form) Error(name string) string {
	if fl, ok := f.fields[name]; ok {
		return fl.err
	}
	return ""
}

// Validate runs every field's validator, as on submit, and reports whether
// the form may be submitted.
func (f *Form) Validate() bool {
	ok := true
	for _, name := range f.order {
		fl := f.fields[name]
		fl.err = f.run(fl)
		if fl.err != "" {
			ok = false
		}
	}
	return ok
}

// Errors returns the field errors currently held, keyed by field name.
func (f *Form) Errors() map[string]string {
	errs := make(map[string]string)
	for name, fl := range f.fields {
		if fl.err != "" {
			errs[name] = fl.err
		}
	}
	return errs
}

func (f *Form) run(fl *field) string {
	if fl.validate == nil {
		return ""
	}
	return fl.validate(fl.value, f)
}
