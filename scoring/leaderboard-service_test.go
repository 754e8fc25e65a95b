package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func entry(studentId int, name string, total int, rank int) *RankedStudent {
	return &RankedStudent{StudentId: studentId, FullName: name, Total: total, Rank: rank}
}

func TestDiffFirstBoard(t *testing.T) {
	newMap, diff := Diff(nil, []*RankedStudent{entry(1, "Aziza", 10, 1), entry(2, "Bobur", 5, 2)})
	assert.Len(t, newMap, 2)
	assert.Len(t, diff, 2)
	assert.Equal(t, Added, diff[1].DiffType)
	assert.Equal(t, Added, diff[2].DiffType)
}

func TestDiffUnchangedEntriesAreFiltered(t *testing.T) {
	board, _ := Diff(nil, []*RankedStudent{entry(1, "Aziza", 10, 1), entry(2, "Bobur", 5, 2)})
	newBoard, diff := Diff(board, []*RankedStudent{entry(1, "Aziza", 10, 1), entry(2, "Bobur", 8, 2)})
	assert.Len(t, newBoard, 2)
	assert.Len(t, diff, 1)
	assert.Equal(t, Changed, diff[2].DiffType)
	assert.Equal(t, []string{"Total"}, diff[2].FieldDiff)
}

func TestDiffRankSwap(t *testing.T) {
	board, _ := Diff(nil, []*RankedStudent{entry(1, "Aziza", 10, 1), entry(2, "Bobur", 5, 2)})
	_, diff := Diff(board, []*RankedStudent{entry(2, "Bobur", 20, 1), entry(1, "Aziza", 10, 2)})
	assert.Len(t, diff, 2)
	assert.ElementsMatch(t, []string{"Total", "Rank"}, diff[2].FieldDiff)
	assert.Equal(t, []string{"Rank"}, diff[1].FieldDiff)
}

func TestDiffRemovedStudent(t *testing.T) {
	board, _ := Diff(nil, []*RankedStudent{entry(1, "Aziza", 10, 1), entry(2, "Bobur", 5, 2)})
	newBoard, diff := Diff(board, []*RankedStudent{entry(1, "Aziza", 10, 1)})
	assert.Len(t, newBoard, 1)
	assert.Len(t, diff, 1)
	assert.Equal(t, Removed, diff[2].DiffType)
}
