package cpu

import (
	"math/rand"
	"time"
)

//Random supplies the bytes used by CXKK
type Random interface {
	Byte() uint8
}

type mathRandom struct {
	r *rand.Rand
}

//NewRandom returns a Random backed by math/rand. A zero seed picks one from
//the wall clock.
func NewRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &mathRandom{r: rand.New(rand.NewSource(seed))}
}

func (m *mathRandom) Byte() uint8 {
	return uint8(m.r.Intn(256))
}
