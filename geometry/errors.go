package geometry

import "github.com/pkg/errors"

// NewAxisIndexOutOfRangeError returns an error for an axis index outside the
// shape's dimensionality.
func NewAxisIndexOutOfRangeError(index, size int) error {
	return errors.Errorf("axis index %d out of range: shape has %d axes", index, size)
}

// NewInsufficientPointsError returns an error for a fit attempted with fewer
// points than the conic has degrees of freedom.
func NewInsufficientPointsError(got, want int) error {
	return errors.Errorf("insufficient points for fitting: got %d, need at least %d", got, want)
}

// NewFitFailedError returns an error for a fit whose least-squares problem
// admits no elliptical solution.
func NewFitFailedError(reason string) error {
	return errors.Errorf("ellipse fitting failed: %s", reason)
}

// NewNotAnEllipseError returns an error for conic coefficients that do not
// describe an ellipse.
func NewNotAnEllipseError() error {
	return errors.New("the provided coefficients do not describe an ellipse")
}
