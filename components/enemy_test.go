package components

import "testing"

func TestPatrolDirectionCycle(t *testing.T) {
	order := []PatrolDirection{PatrolRight, PatrolDown, PatrolLeft, PatrolUp, PatrolRight}
	for i := 0; i < len(order)-1; i++ {
		if got := order[i].Next(); got != order[i+1] {
			t.Errorf("%v.Next() = %v, want %v", order[i], got, order[i+1])
		}
	}
}

func TestBehaviorNames(t *testing.T) {
	tests := []struct {
		behavior EnemyBehavior
		want     string
	}{
		{BehaviorRandom, "random"},
		{BehaviorChaser, "chaser"},
		{BehaviorPatrol, "patrol"},
		{EnemyBehavior(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.behavior.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
