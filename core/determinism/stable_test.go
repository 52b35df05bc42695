package determinism

import "testing"

func TestSortedKeys(t *testing.T) {
	m := map[int]string{120: "c", 40: "a", 80: "b"}
	got := SortedKeys(m)
	want := []int{40, 80, 120}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortedKeys = %v, want %v", got, want)
		}
	}

	var visited []int
	RangeMapSorted(m, func(k int, _ string) bool {
		visited = append(visited, k)
		return k < 80
	})
	if len(visited) != 2 || visited[1] != 80 {
		t.Errorf("RangeMapSorted visited %v", visited)
	}
}

func TestHashLines(t *testing.T) {
	a := HashLines([]string{"starter|sessions|40", "starter|visio|0"})
	b := HashLines([]string{"starter|sessions|40", "starter|visio|0"})
	if a != b {
		t.Fatal("same lines hashed differently")
	}
	if a == HashLines([]string{"starter|visio|0", "starter|sessions|40"}) {
		t.Error("line order ignored")
	}
	if a == HashLines([]string{"starter|sessions|40starter|visio|0"}) {
		t.Error("line boundaries ignored")
	}
	if len(a.Hex()) != 64 || len(a.Short()) != 12 || a.String() != a.Short() {
		t.Errorf("unexpected encodings %s / %s", a.Hex(), a.Short())
	}
}
