// batch.go - parallel Block API processing (spec §5: "CTR and AEAD
// blocks are independent ... and may be processed in parallel"). Every
// block runs in its own goroutine from its own clone of the shared
// initial state, so no goroutine ever shares a working register array
// with another. Blocks go through EncryptBlock/DecryptBlock directly:
// CTR mode's per-block counter fold into R[0] is not applied, so the
// output is not EncryptCTR's ciphertext.
package ruc

import "sync"

// maxBatchWorkers bounds how many blocks run concurrently in one
// EncryptBlocks/DecryptBlocks call, so a very large batch doesn't spawn
// one goroutine per block.
const maxBatchWorkers = 16

// EncryptBlocks encrypts blocks[i] at block index n+uint64(i), each from
// its own clone of initial, and returns the ciphertext blocks in order.
// initial is never mutated. Implementations that offer parallel CTR must
// produce bit-identical output to the sequential reference (spec §5);
// this just amortises the caller's choice to fan the work out.
func EncryptBlocks(km *KeyMaterial, initial *State, n uint64, blocks [][BlockSize]byte) [][BlockSize]byte {
	return runBatch(blocks, func(i int) [BlockSize]byte {
		return EncryptBlock(blocks[i], n+uint64(i), initial.Clone(), km)
	})
}

// DecryptBlocks reverses EncryptBlocks.
func DecryptBlocks(km *KeyMaterial, initial *State, n uint64, blocks [][BlockSize]byte) [][BlockSize]byte {
	return runBatch(blocks, func(i int) [BlockSize]byte {
		return DecryptBlock(blocks[i], n+uint64(i), initial.Clone(), km)
	})
}

func runBatch(blocks [][BlockSize]byte, process func(i int) [BlockSize]byte) [][BlockSize]byte {
	out := make([][BlockSize]byte, len(blocks))
	sem := make(chan struct{}, maxBatchWorkers)
	var wg sync.WaitGroup

	for i := range blocks {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			out[i] = process(i)
		}(i)
	}
	wg.Wait()
	return out
}
