package banking

import "log"

// A Bank is a synchronous single-port memory with byte-mask writes and a
// one-cycle read latency. The controller relies only on this contract:
//
//   - On an edge with valid=true, write=true, the bytes of data selected by
//     mask are committed at localAddr. The update is visible to reads from
//     the next edge onward.
//   - On an edge with valid=true, write=false, a read begins. Its result is
//     what Output returns after the next edge, with the value the storage
//     held at the time of the request.
//   - On an edge with valid=false, the bank must not mutate state. What
//     Output returns afterwards is the previous output if the bank latches
//     its last read, and is unspecified otherwise.
type Bank interface {
	// Tick applies one clock edge with the given request signals.
	Tick(valid, write bool, localAddr uint64, data []byte, mask []bool)

	// Output returns the read value observable this cycle.
	Output() []byte
}

// BankFactory creates the bank at one (width, depth) coordinate of the
// grid. depth is the number of entries, widthBits the entry width.
type BankFactory func(depth uint64, widthBits int, latchLastRead bool) Bank

// An SRAMBank is the reference Bank implementation, backed by an in-memory
// byte array.
type SRAMBank struct {
	depth         uint64
	entryBytes    int
	latchLastRead bool

	storage []byte
	output  []byte

	pending      []byte
	pendingValid bool
}

// NewSRAMBank creates a bank with the given number of entries of widthBits
// bits each.
func NewSRAMBank(depth uint64, widthBits int, latchLastRead bool) *SRAMBank {
	if depth == 0 || widthBits <= 0 || widthBits%8 != 0 {
		log.Panicf("banking: bad bank geometry %d x %d bits", depth, widthBits)
	}

	entryBytes := widthBits / 8

	return &SRAMBank{
		depth:         depth,
		entryBytes:    entryBytes,
		latchLastRead: latchLastRead,
		storage:       make([]byte, depth*uint64(entryBytes)),
		output:        make([]byte, entryBytes),
		pending:       make([]byte, entryBytes),
	}
}

// Tick applies one clock edge.
func (b *SRAMBank) Tick(
	valid, write bool,
	localAddr uint64,
	data []byte,
	mask []bool,
) {
	// The read requested at the previous edge surfaces now.
	if b.pendingValid {
		b.output, b.pending = b.pending, b.output
		b.pendingValid = false
	} else if !b.latchLastRead {
		for i := range b.output {
			b.output[i] = 0
		}
	}

	if !valid {
		return
	}

	if localAddr >= b.depth {
		log.Panicf("banking: local address %d out of range [0, %d)",
			localAddr, b.depth)
	}

	entry := b.storage[localAddr*uint64(b.entryBytes):][:b.entryBytes]

	if write {
		if len(data) != b.entryBytes || len(mask) != b.entryBytes {
			log.Panicf("banking: write slice width %d/%d, want %d bytes",
				len(data), len(mask), b.entryBytes)
		}

		for k := range entry {
			if mask[k] {
				entry[k] = data[k]
			}
		}

		return
	}

	copy(b.pending, entry)
	b.pendingValid = true
}

// Output returns the value observable this cycle. The returned slice stays
// owned by the bank.
func (b *SRAMBank) Output() []byte {
	return b.output
}
