package battleship

import "testing"

// scriptedRandom replays draws in order and wraps around.
func scriptedRandom(draws ...int) RandomInt {
	i := 0
	return func(lo, hi int) int {
		v := draws[i%len(draws)]
		i++
		return v
	}
}

func TestRandomPlacementRetriesOnCollision(t *testing.T) {
	bf := CreateWithShips(5, Schema{2: 1, 1: 1})
	bf.SetPlacementStrategy(NewRandomPlacementStrategy(scriptedRandom(
		0, 1, 1, // length 2 lands on 1:1 and 2:1
		0, 2, 1, // length 1 overlaps it
		0, 4, 4, // retry lands free
	)))

	bf.ArrangeShips()

	ships := bf.ShipsCollection().Slice()
	single, double := ships[0], ships[1]

	if head, _ := double.Position(); head != NewCoordinates(1, 1) {
		t.Fatalf("expected head: %v\tgot: %v", NewCoordinates(1, 1), head)
	}
	if head, _ := single.Position(); head != NewCoordinates(4, 4) {
		t.Fatalf("expected head: %v\tgot: %v", NewCoordinates(4, 4), head)
	}
	if !bf.ValidateShips(ships) {
		t.Fatal("expected arranged fleet to validate")
	}
	if _, prs := bf.GetField(NewCoordinates(2, 1)); !prs {
		t.Fatal("expected field of the longer ship")
	}
	if field, _ := bf.GetField(NewCoordinates(2, 1)); field.Len() != 1 {
		t.Fatalf("rejected draw must leave the field\tgot occupants: %d", field.Len())
	}
}

func TestRandomPlacementFleet(t *testing.T) {
	schema := Schema{4: 1, 3: 2, 2: 3, 1: 4}

	for i := 0; i < 20; i++ {
		bf := CreateWithShips(10, schema)
		bf.MarkAsHit(NewCoordinates(0, 0))

		bf.ArrangeShips()

		if !bf.ValidateFleet() {
			t.Fatal("expected a valid arrangement")
		}
		if bf.Len() != schema.Cells() {
			t.Fatalf("expected occupied fields: %d\tgot: %d", schema.Cells(), bf.Len())
		}
		for ship := range bf.ShipsCollection().All() {
			if !ship.HasPosition() {
				t.Fatalf("ship %s was not placed", ship.ID())
			}
		}
	}
}

func TestRandomPlacementLocked(t *testing.T) {
	bf := CreateWithShips(5, Schema{1: 1})
	ship := bf.ShipsCollection().Slice()[0]
	bf.MoveShip(ship, NewCoordinates(2, 2))
	bf.Lock()

	bf.ArrangeShips()

	if head, _ := ship.Position(); head != NewCoordinates(2, 2) {
		t.Fatalf("locked battlefield must keep ships\tgot: %v", head)
	}
}

func TestUniformRandomIntRange(t *testing.T) {
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := UniformRandomInt(2, 4)
		if v < 2 || v > 4 {
			t.Fatalf("value out of range: %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected every value in range\tgot: %v", seen)
	}
}
