package sim

import (
	"testing"

	"github.com/matthewliu10/birdman/internal/rng"
)

func TestBrain_ExportImportRoundTrip(t *testing.T) {
	r := rng.New(11)
	original := RandomBrain(r, 9)

	weights := ExportBrain(original)
	if len(weights.Topology) != 3 {
		t.Fatalf("topology length = %d, want 3", len(weights.Topology))
	}

	rebuilt := BrainFromWeights(weights)
	rebuiltWeights := ExportBrain(rebuilt)

	if len(weights.Weights) != len(rebuiltWeights.Weights) {
		t.Fatalf("weight count changed: %d vs %d", len(weights.Weights), len(rebuiltWeights.Weights))
	}
	for i := range weights.Weights {
		if weights.Weights[i] != rebuiltWeights.Weights[i] {
			t.Errorf("weight %d: %v != %v", i, weights.Weights[i], rebuiltWeights.Weights[i])
		}
	}
}

func TestBrainTopology_Shape(t *testing.T) {
	topology := BrainTopology(9)
	want := []int{9, 18, 2}
	if len(topology) != len(want) {
		t.Fatalf("topology = %v, want %v", topology, want)
	}
	for i := range want {
		if topology[i] != want[i] {
			t.Errorf("topology[%d] = %d, want %d", i, topology[i], want[i])
		}
	}
}
