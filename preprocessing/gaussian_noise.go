package preprocessing

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/noisegen/core/model"
	"github.com/YuminosukeSato/noisegen/noise"
	"github.com/YuminosukeSato/noisegen/pkg/errors"
	"github.com/YuminosukeSato/noisegen/stats"
	"github.com/YuminosukeSato/noisegen/vecops"
)

var (
	_ model.Transformer     = (*GaussianNoise)(nil)
	_ model.ParameterGetter = (*GaussianNoise)(nil)
)

// GaussianNoise は各特徴量に独立したガウスノイズを加える変換器
// ノイズの分散は学習データの標本分散 × Ratio に校正される
type GaussianNoise struct {
	model.BaseEstimator

	// Ratio はノイズ電力と信号電力の比
	Ratio float64

	// Mean は各特徴量の平均値
	Mean []float64

	// Variance は各特徴量の標本分散（N-1で割る）
	Variance []float64

	// NoiseVariance は各特徴量に加えるノイズの分散 (Variance × Ratio)
	NoiseVariance []float64

	opts   []noise.Option
	source *noise.Source
}

// NewGaussianNoise は新しいGaussianNoiseを作成する
//
// パラメータ:
//   - ratio: ノイズ電力と信号電力の比 (0ならノイズなし)
//   - opts: 乱数源の設定 (noise.WithSeed など)
//
// 使用例:
//
//	gn := preprocessing.NewGaussianNoise(0.1, noise.WithSeed(42))
//	XNoisy, err := gn.FitTransform(X)
func NewGaussianNoise(ratio float64, opts ...noise.Option) *GaussianNoise {
	return &GaussianNoise{Ratio: ratio, opts: opts}
}

// Fit は訓練データから各特徴量の平均・標本分散を計算し、ノイズ源を構築する
//
// 戻り値:
//   - error: 行数が2未満の場合、またはスケール済み分散が負になる場合
func (g *GaussianNoise) Fit(X mat.Matrix) error {
	g.Reset()
	r, c := X.Dims()
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = mat.Row(nil, i, X)
	}

	cs, err := stats.MeanVariance(rows)
	if err != nil {
		return err
	}

	noiseVariance := append([]float64(nil), cs.Variance...)
	vecops.ScalarMultiply(noiseVariance, g.Ratio)

	source, err := noise.NewSource(noiseVariance, g.opts...)
	if err != nil {
		return err
	}

	g.Mean = cs.Mean
	g.Variance = cs.Variance
	g.NoiseVariance = noiseVariance
	g.source = source
	g.SetFitted(c)
	return nil
}

// Transform は学習済みのノイズ源を使ってノイズを加えた新しい行列を返す
// X 自体は変更しない
func (g *GaussianNoise) Transform(X mat.Matrix) (mat.Matrix, error) {
	if err := g.CheckTransformInput("GaussianNoise", "Transform", X); err != nil {
		return nil, err
	}

	r, c := X.Dims()

	result := mat.DenseCopyOf(X)
	buf := make([]float64, c)
	for i := 0; i < r; i++ {
		if err := g.source.SampleInto(buf); err != nil {
			return nil, err
		}
		// RawRowView は result の内部データを直接参照する
		if err := vecops.Add(result.RawRowView(i), buf); err != nil {
			return nil, errors.AtRow(err, i)
		}
	}
	return result, nil
}

// FitTransform は訓練データで学習し、同じデータにノイズを加える
func (g *GaussianNoise) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := g.Fit(X); err != nil {
		return nil, err
	}
	return g.Transform(X)
}

// GetParams はパラメータを取得する
func (g *GaussianNoise) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"ratio": g.Ratio,
	}
}

// String は変換器の文字列表現を返す
func (g *GaussianNoise) String() string {
	if !g.IsFitted() {
		return fmt.Sprintf("GaussianNoise(ratio=%g)", g.Ratio)
	}
	return fmt.Sprintf("GaussianNoise(ratio=%g, n_features=%d)", g.Ratio, g.NFeatures())
}
