package nasattr

import "strings"

// Registry はベンダー名からエンコーダーを選択する。
type Registry struct {
	encoders map[string]Encoder
	def      Encoder
}

// NewRegistry は新しいRegistryを生成する。defはフォールバック先。
func NewRegistry(def Encoder) *Registry {
	return &Registry{
		encoders: map[string]Encoder{def.Name(): def},
		def:      def,
	}
}

// Register はエンコーダーを登録する。同名は上書きする。
func (r *Registry) Register(e Encoder) {
	r.encoders[e.Name()] = e
}

// Get はベンダー名に対応するエンコーダーを返す。
// 未登録または空文字の場合はデフォルトを返す。
func (r *Registry) Get(vendor string) Encoder {
	if e, ok := r.encoders[strings.ToLower(strings.TrimSpace(vendor))]; ok {
		return e
	}
	return r.def
}

// DefaultRegistry は組み込みエンコーダーを登録済みのRegistryを返す。
func DefaultRegistry() *Registry {
	r := NewRegistry(NewGenericEncoder())
	r.Register(NewMikrotikEncoder())
	return r
}
