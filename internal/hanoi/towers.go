package hanoi

// Peg is a stack of disk ranks, bottom first.
type Peg []int

// Top returns the rank of the topmost disk, or 0 when the peg is empty.
func (p Peg) Top() int {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1]
}

// Ordered reports whether ranks strictly decrease from bottom to top.
func (p Peg) Ordered() bool {
	for i := 1; i < len(p); i++ {
		if p[i] >= p[i-1] {
			return false
		}
	}
	return true
}

type Towers [NumPegs]Peg

// NewTowers returns the canonical starting position: all n disks on peg 0,
// largest at the bottom.
func NewTowers(n int) Towers {
	var t Towers
	if n <= 0 {
		return t
	}
	t[SourcePeg] = make(Peg, n)
	for i := range t[SourcePeg] {
		t[SourcePeg][i] = n - i
	}
	return t
}

func (t Towers) Clone() Towers {
	var c Towers
	for i, p := range t {
		if p == nil {
			continue
		}
		c[i] = make(Peg, len(p))
		copy(c[i], p)
	}
	return c
}

// Disks returns the total number of disks across all pegs.
func (t Towers) Disks() int {
	total := 0
	for _, p := range t {
		total += len(p)
	}
	return total
}

// Apply moves the top disk of m.From onto m.To. On error the towers are
// left unchanged.
func (t *Towers) Apply(m Move) error {
	if !m.Valid() {
		return ErrInvalidPeg
	}
	src := t[m.From]
	if len(src) == 0 {
		return ErrEmptyPeg
	}
	disk := src[len(src)-1]
	if top := t[m.To].Top(); top != 0 && top < disk {
		return ErrIllegalMove
	}
	t[m.From] = src[:len(src)-1]
	t[m.To] = append(t[m.To], disk)
	return nil
}

// Solved reports whether all n disks sit on the target peg in order.
func (t Towers) Solved(n int) bool {
	if len(t[SourcePeg]) != 0 || len(t[AuxiliaryPeg]) != 0 {
		return false
	}
	target := t[TargetPeg]
	if len(target) != n {
		return false
	}
	for i, disk := range target {
		if disk != n-i {
			return false
		}
	}
	return true
}
