package rotgroup

import "gonum.org/v1/gonum/mat"

// verifyWithGonum spot-checks a deterministic sample of the generated
// group against an independent linear-algebra implementation: every
// fourth element (plus the last, to always cover a non-identity,
// non-trivial rotation) is converted to a dense gonum matrix and
// checked for R*R^T = I and det(R) = +1.
//
// This is intentionally not run over all 24 matrices on every boot: it
// is a cross-check against a second implementation, not a replacement
// for the integer fast-path assertions in MustGenerate.
func verifyWithGonum(rots []Matrix) error {
	for idx := 0; idx < len(rots); idx += 4 {
		if err := verifyOneWithGonum(rots[idx]); err != nil {
			return err
		}
	}
	if last := len(rots) - 1; last >= 0 {
		if err := verifyOneWithGonum(rots[last]); err != nil {
			return err
		}
	}
	return nil
}

func verifyOneWithGonum(m Matrix) error {
	data := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			data = append(data, float64(m[i][j]))
		}
	}
	r := mat.NewDense(3, 3, data)

	var rt mat.Dense
	rt.CloneFrom(r.T())

	var product mat.Dense
	product.Mul(r, &rt)

	id := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	if !mat.EqualApprox(&product, id, 1e-9) {
		return ErrNotOrthogonal
	}

	if det := mat.Det(r); det < 1-1e-9 || det > 1+1e-9 {
		return ErrNotOrthogonal
	}
	return nil
}
