package aes

// State is an ordered sequence of Blocks carved from an input byte
// string, bound to a key schedule and round count.
type State struct {
	blocks   []Block
	schedule []uint32
	key      [4]uint64
	rounds   int
}

// NewState partitions in into 16-byte Blocks and expands the key
// schedule for the given round count.
func NewState(in []byte, key [4]uint64, rounds int) (*State, error) {
	nk, err := nkForRounds(rounds)
	if err != nil {
		return nil, err
	}
	schedule, err := expandKey(key, nk)
	if err != nil {
		return nil, err
	}

	var blocks []Block
	if len(in) == 0 {
		blocks = []Block{NewBlock(nil)}
	} else {
		for i := 0; i < len(in); i += BlockSize {
			end := i + BlockSize
			if end > len(in) {
				end = len(in)
			}
			blocks = append(blocks, NewBlock(in[i:end]))
		}
	}

	return &State{blocks: blocks, schedule: schedule, key: key, rounds: rounds}, nil
}

// stateFromBlocks builds a State directly from an already-partitioned
// block sequence rather than slicing one from a byte string. Nothing
// in the package calls it; GCM works on []Block values directly.
func stateFromBlocks(blocks []Block, key [4]uint64, rounds int) (*State, error) {
	nk, err := nkForRounds(rounds)
	if err != nil {
		return nil, err
	}
	schedule, err := expandKey(key, nk)
	if err != nil {
		return nil, err
	}
	return &State{blocks: blocks, schedule: schedule, key: key, rounds: rounds}, nil
}

// Unravel concatenates the unravelled form of every block.
func (s *State) Unravel() []byte {
	out := make([]byte, 0, len(s.blocks)*BlockSize)
	for _, b := range s.blocks {
		out = append(out, b.Unravel()...)
	}
	return out
}

func (s *State) AddRoundKey(round int) {
	for i := range s.blocks {
		s.blocks[i].AddRoundKey(round, s.schedule)
	}
}

func (s *State) SubBytes() {
	for i := range s.blocks {
		s.blocks[i].SubBytes()
	}
}

func (s *State) InvSubBytes() {
	for i := range s.blocks {
		s.blocks[i].InvSubBytes()
	}
}

func (s *State) ShiftRows() {
	for i := range s.blocks {
		s.blocks[i].ShiftRows()
	}
}

func (s *State) InvShiftRows() {
	for i := range s.blocks {
		s.blocks[i].InvShiftRows()
	}
}

func (s *State) MixColumns() {
	for i := range s.blocks {
		s.blocks[i].MixColumns()
	}
}

func (s *State) InvMixColumns() {
	for i := range s.blocks {
		s.blocks[i].InvMixColumns()
	}
}
