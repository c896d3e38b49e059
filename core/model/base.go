package model

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/noisegen/pkg/errors"
)

// EstimatorState は変換器の学習状態を表す
type EstimatorState int

const (
	// NotFitted は統計量が未計算の状態
	NotFitted EstimatorState = iota
	// Fitted は列ごとの統計量とノイズ源が構築済みの状態
	Fitted
)

// BaseEstimator は全ての変換器の基底となる構造体
// 学習状態と学習時の列数を保持し、変換時の入力検証を共通化する
type BaseEstimator struct {
	state     EstimatorState
	nFeatures int
}

// IsFitted は統計量が計算済みかどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted は学習時の列数を記録して計算済み状態に設定する
func (e *BaseEstimator) SetFitted(nFeatures int) {
	e.state = Fitted
	e.nFeatures = nFeatures
}

// NFeatures は学習時の列数を返す（未学習なら0）
func (e *BaseEstimator) NFeatures() int {
	return e.nFeatures
}

// Reset は初期状態にリセットする
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
	e.nFeatures = 0
}

// CheckTransformInput は X が学習済みの変換器に渡せるかを検証する
//
// 戻り値:
//   - NotFittedError: 未学習の場合
//   - ErrEmptyDataset: X に行がない場合
//   - ErrShapeMismatch: 列数が学習時と異なる場合
func (e *BaseEstimator) CheckTransformInput(name, method string, X mat.Matrix) error {
	if !e.IsFitted() {
		return errors.NewNotFittedError(name, method)
	}
	r, c := X.Dims()
	if r == 0 {
		return errors.NewEmptyDatasetError(name + "." + method)
	}
	if c != e.nFeatures {
		return errors.NewShapeError(name+"."+method, e.nFeatures, c)
	}
	return nil
}
