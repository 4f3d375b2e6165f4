package hctree

import (
	"bufio"
	"io"
)

// Frequencies counts the occurrences of each Symbol.
type Frequencies [NumSymbols]uint64

// Add counts every byte of p.
func (f *Frequencies) Add(p []byte) {
	for _, b := range p {
		f[b]++
	}
}

// Total returns the number of symbols counted.
func (f *Frequencies) Total() uint64 {
	var sum uint64
	for _, freq := range f {
		sum += freq
	}
	return sum
}

// CountFrequencies reads r to EOF and counts its bytes.
func CountFrequencies(r io.Reader) (Frequencies, error) {
	var f Frequencies
	br := bufio.NewReader(r)
	buf := make([]byte, 64*1024)
	for {
		n, err := br.Read(buf)
		f.Add(buf[:n])
		if err == io.EOF {
			return f, nil
		}
		if err != nil {
			return f, err
		}
	}
}
