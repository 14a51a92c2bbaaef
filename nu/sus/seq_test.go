package sus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeq(t *testing.T) {
	assert.Equal(t, "seq", Seq(nil))
	assert.Equal(t, "1..5", Seq([]string{"5"}))
	assert.Equal(t, "3..7", Seq([]string{"3", "7"}))
	assert.Equal(t, "2..10 | step 3", Seq([]string{"2", "3", "10"}))
	assert.Equal(t, "10..1 | reverse", Seq([]string{"10", "1"}))
	assert.Equal(t, "10..1 | step -2", Seq([]string{"10", "-2", "1"}))
	assert.Equal(t, `1..5 | str join ","`, Seq([]string{"-s", ",", "1", "5"}))
	assert.Equal(t, "8..12 | each { |n| $n | into string }", Seq([]string{"-w", "8", "12"}))
	assert.Equal(t, "seq invalid", Seq([]string{"invalid"}))
}

func TestSeqZeroIncrement(t *testing.T) {
	assert.Equal(t, "seq 1 0 5", Seq([]string{"1", "0", "5"}))
}
