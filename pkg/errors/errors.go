// Package errors はプロジェクト全体のエラーハンドリングを提供します。
// ノイズ注入パイプラインで発生するエラーを種類ごとに構造化し、
// cockroachdb/errors によるスタックトレースと zerolog による構造化ログ出力に対応します。
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	エラー種別（センチネル）
//
// ===========================================================================

var (
	// ErrEmptyDataset は行が一つもないデータセットが渡された場合のエラーです。
	ErrEmptyDataset = New("empty dataset")

	// ErrInsufficientRows は標本分散を計算するのに行数が足りない（2行未満）場合のエラーです。
	ErrInsufficientRows = New("insufficient rows")

	// ErrShapeMismatch は行の長さ、またはベクトルの長さが一致しない場合のエラーです。
	ErrShapeMismatch = New("shape mismatch")

	// ErrInvalidVariance はスケール済み分散に負の値、NaN、または無限大が含まれる場合のエラーです。
	ErrInvalidVariance = New("invalid variance")
)

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// DatasetError はデータセット全体の行数が統計量の計算に足りない場合のエラーです。
// Err には ErrEmptyDataset または ErrInsufficientRows が入ります。
type DatasetError struct {
	Op   string
	Rows int
	Err  error
}

func (e *DatasetError) Error() string {
	return fmt.Sprintf("noisegen: %s: %v (rows: %d)", e.Op, e.Err, e.Rows)
}

func (e *DatasetError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DatasetError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("rows", e.Rows).
		Str("kind", e.Err.Error()).
		Str("type", "DatasetError")
}

// NewEmptyDatasetError は行数0のデータセットに対するエラーを作成します。
func NewEmptyDatasetError(op string) error {
	return errors.WithStack(&DatasetError{Op: op, Rows: 0, Err: ErrEmptyDataset})
}

// NewInsufficientRowsError は行数が2未満のデータセットに対するエラーを作成します。
func NewInsufficientRowsError(op string, rows int) error {
	return errors.WithStack(&DatasetError{Op: op, Rows: rows, Err: ErrInsufficientRows})
}

// ShapeError はベクトル長が期待値と異なる場合のエラーです。
// Row が0以上の場合、問題のある行番号を示します。
type ShapeError struct {
	Op       string
	Expected int
	Got      int
	Row      int
}

func (e *ShapeError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("noisegen: %s: shape mismatch at row %d. Expected length %d, got %d", e.Op, e.Row, e.Expected, e.Got)
	}
	return fmt.Sprintf("noisegen: %s: shape mismatch. Expected length %d, got %d", e.Op, e.Expected, e.Got)
}

// Is は ErrShapeMismatch との比較を可能にします。
func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ShapeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("row", e.Row).
		Str("type", "ShapeError")
}

// NewShapeError は新しいShapeErrorを作成し、スタックトレースを付与します。
func NewShapeError(op string, expected, got int) error {
	return errors.WithStack(&ShapeError{Op: op, Expected: expected, Got: got, Row: -1})
}

// AtRow は err が ShapeError の場合に行番号を付与します。それ以外のエラーはそのまま返します。
func AtRow(err error, row int) error {
	var shapeErr *ShapeError
	if errors.As(err, &shapeErr) {
		shapeErr.Row = row
	}
	return err
}

// VarianceError は列の分散がガウス分布のパラメータとして使えない場合のエラーです。
type VarianceError struct {
	Op     string
	Column int
	Value  float64
}

func (e *VarianceError) Error() string {
	return fmt.Sprintf("noisegen: %s: invalid variance %g for column %d (must be finite and non-negative)", e.Op, e.Value, e.Column)
}

// Is は ErrInvalidVariance との比較を可能にします。
func (e *VarianceError) Is(target error) bool {
	return target == ErrInvalidVariance
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *VarianceError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("column", e.Column).
		Float64("value", e.Value).
		Str("type", "VarianceError")
}

// NewVarianceError は新しいVarianceErrorを作成し、スタックトレースを付与します。
func NewVarianceError(op string, column int, value float64) error {
	return errors.WithStack(&VarianceError{Op: op, Column: column, Value: value})
}

// NotFittedError は未学習の状態で `Transform` を呼び出した場合のエラーです。
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("noisegen: %s: this transformer is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError は新しいNotFittedErrorを作成し、スタックトレースを付与します。
func NewNotFittedError(modelName, method string) error {
	return errors.WithStack(&NotFittedError{ModelName: modelName, Method: method})
}

// ValidationError は設定値やパラメータの検証に失敗した場合のエラーです。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("noisegen: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	return errors.WithStack(&ValidationError{ParamName: param, Reason: reason, Value: value})
}

// NumericalInstabilityError は統計量にNaNやInfが含まれる場合のエラーです。
type NumericalInstabilityError struct {
	Operation string    // 発生した操作（例: "MeanVariance"）
	Values    []float64 // 問題のある値
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("noisegen: numerical instability detected in %s. Values: [%s]", e.Operation, valStr)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NumericalInstabilityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Floats64("values", e.Values).
		Str("type", "NumericalInstabilityError")
}

// NewNumericalInstabilityError は新しいNumericalInstabilityErrorを作成します。
func NewNumericalInstabilityError(operation string, values []float64) error {
	return errors.WithStack(&NumericalInstabilityError{Operation: operation, Values: values})
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}
