// Package metrics はノイズ注入前後の列を比較し、データの歪みを定量化します。
//
// 引数の順序は常に (元の値, ノイズ付加後の値) です。
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/noisegen/pkg/errors"
)

// ErrZeroVariance は元の値がすべて同じで決定係数が定義できない場合のエラーです。
var ErrZeroVariance = errors.New("original values have zero variance")

func validate(op string, original, noisy *mat.VecDense) error {
	n := original.Len()
	if n == 0 {
		return errors.NewEmptyDatasetError(op)
	}
	if noisy.Len() != n {
		return errors.NewShapeError(op, n, noisy.Len())
	}
	return nil
}

// MSE は平均二乗誤差を計算します。
func MSE(original, noisy *mat.VecDense) (float64, error) {
	if err := validate("metrics.MSE", original, noisy); err != nil {
		return 0, err
	}
	// MSE = ||original - noisy||₂² / n
	d := floats.Distance(original.RawVector().Data, noisy.RawVector().Data, 2)
	mse := d * d / float64(original.Len())
	return mse, errors.CheckScalar("metrics.MSE", mse)
}

// RMSE は平方根平均二乗誤差を計算します。
func RMSE(original, noisy *mat.VecDense) (float64, error) {
	mse, err := MSE(original, noisy)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE は平均絶対誤差を計算します。
func MAE(original, noisy *mat.VecDense) (float64, error) {
	if err := validate("metrics.MAE", original, noisy); err != nil {
		return 0, err
	}
	mae := floats.Distance(original.RawVector().Data, noisy.RawVector().Data, 1) / float64(original.Len())
	return mae, errors.CheckScalar("metrics.MAE", mae)
}

// R2Score はノイズ付加後の値が元の値の変動をどれだけ保っているかを決定係数で表します。
// 比率 r のノイズでは期待値はおよそ 1 - r です。
func R2Score(original, noisy *mat.VecDense) (float64, error) {
	if err := validate("metrics.R2Score", original, noisy); err != nil {
		return 0, err
	}

	y := original.RawVector().Data
	mean := stat.Mean(y, nil)

	// 全変動（TSS）と残差変動（RSS）
	var tss float64
	for _, v := range y {
		tss += (v - mean) * (v - mean)
	}
	if tss == 0 {
		return 0, errors.WithStack(ErrZeroVariance)
	}
	rss := floats.Distance(y, noisy.RawVector().Data, 2)
	rss *= rss

	return 1 - rss/tss, nil
}
