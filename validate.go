package plotter

// Validate checks whether the operation has the parameters its
// transformation needs. Returns an error if something is missing, nil if
// the operation can be applied.
//
// Apply does not call Validate; it computes whatever the parameters give.
func (o Op) Validate() error {
	t := o.Transformation
	if !t.Valid() {
		return NewValidationError("invalid transformation: %v", t)
	}

	switch t.Arity() {
	case OneFactor:
		if !o.X.IsSet() {
			return NewValidationError("%v requires a factor", t)
		}
		if !isFinite(o.X.value) {
			return NewValidationError("invalid factor for %v: %v", t, o.X)
		}
		if o.X.value == 0 {
			return NewValidationError("factor for %v must not be zero", t)
		}

	case TwoFactors:
		usable := false
		for _, f := range []Factor{o.X, o.Y} {
			if !f.IsSet() {
				continue
			}
			if !isFinite(f.value) {
				return NewValidationError("invalid factor for %v: %v", t, f)
			}
			if f.value != 0 {
				usable = true
			}
		}
		if !usable {
			return NewValidationError("%v requires at least one non-zero factor", t)
		}

	case NoFactors:
		if o.Canvas.Width <= 0 || o.Canvas.Height <= 0 {
			return NewValidationError("invalid canvas size for %v: %v", t, o.Canvas)
		}
	}

	return nil
}

// Resolve returns a copy of the operation where absent factors are replaced
// with zero, which is how an interactive caller fills empty input fields.
func (o Op) Resolve() Op {
	o.X = F(o.X.Or(0))
	o.Y = F(o.Y.Or(0))
	return o
}
