package domain

import "math/bits"

// Flag — любой именованный флаг-перечисление (флаги рас, предметов, заклинаний).
type Flag interface {
	~uint8
}

// FlagSet — типизированное битовое множество на 128 флагов.
// Значимый тип: копируется и сериализуется как два слова.
type FlagSet[F Flag] struct {
	W [2]uint64 `json:"w"`
}

// FlagsOf собирает множество из перечня флагов.
func FlagsOf[F Flag](fs ...F) FlagSet[F] {
	var s FlagSet[F]
	for _, f := range fs {
		s.Set(f)
	}
	return s
}

func (s FlagSet[F]) Has(f F) bool {
	return s.W[f>>6]&(1<<(f&63)) != 0
}

// HasAny — есть ли хоть один из флагов.
func (s FlagSet[F]) HasAny(fs ...F) bool {
	for _, f := range fs {
		if s.Has(f) {
			return true
		}
	}
	return false
}

func (s *FlagSet[F]) Set(f F) {
	s.W[f>>6] |= 1 << (f & 63)
}

func (s *FlagSet[F]) Clear(f F) {
	s.W[f>>6] &^= 1 << (f & 63)
}

// SetTo выставляет или снимает флаг.
func (s *FlagSet[F]) SetTo(f F, on bool) {
	if on {
		s.Set(f)
	} else {
		s.Clear(f)
	}
}

func (s FlagSet[F]) Union(o FlagSet[F]) FlagSet[F] {
	return FlagSet[F]{W: [2]uint64{s.W[0] | o.W[0], s.W[1] | o.W[1]}}
}

func (s FlagSet[F]) Intersect(o FlagSet[F]) FlagSet[F] {
	return FlagSet[F]{W: [2]uint64{s.W[0] & o.W[0], s.W[1] & o.W[1]}}
}

// Minus — флаги s без флагов o.
func (s FlagSet[F]) Minus(o FlagSet[F]) FlagSet[F] {
	return FlagSet[F]{W: [2]uint64{s.W[0] &^ o.W[0], s.W[1] &^ o.W[1]}}
}

func (s FlagSet[F]) Empty() bool {
	return s.W[0] == 0 && s.W[1] == 0
}

func (s FlagSet[F]) Count() int {
	return bits.OnesCount64(s.W[0]) + bits.OnesCount64(s.W[1])
}

// List возвращает флаги по возрастанию номера.
func (s FlagSet[F]) List() []F {
	out := make([]F, 0, s.Count())
	for w := 0; w < 2; w++ {
		word := s.W[w]
		for word != 0 {
			b := bits.TrailingZeros64(word)
			out = append(out, F(w*64+b))
			word &^= 1 << b
		}
	}
	return out
}
