package event_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"go-polygon-defense/internal/event"
	"go-polygon-defense/internal/event/mocks"
)

func TestDispatchReachesSubscribersInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockListener(ctrl)
	second := mocks.NewMockListener(ctrl)

	e := event.Event{Type: event.TowerPlaced, Data: event.PlacementInfo{Key: "pixel", TowerID: 3}}
	gomock.InOrder(
		first.EXPECT().OnEvent(e),
		second.EXPECT().OnEvent(e),
	)

	d := event.NewDispatcher()
	d.Subscribe(event.TowerPlaced, first)
	d.Subscribe(event.TowerPlaced, second)
	d.Dispatch(e)
}

func TestDispatchSkipsOtherTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := mocks.NewMockListener(ctrl)
	l.EXPECT().OnEvent(gomock.Any()).Times(0)

	d := event.NewDispatcher()
	d.Subscribe(event.GameOver, l)
	d.Dispatch(event.Event{Type: event.CreepKilled})
}

func TestSubscribeAll(t *testing.T) {
	calls := 0
	l := event.ListenerFunc(func(event.Event) { calls++ })

	d := event.NewDispatcher()
	d.SubscribeAll(l, event.CreepSpawned, event.CreepLeaked)
	d.Dispatch(event.Event{Type: event.CreepSpawned})
	d.Dispatch(event.Event{Type: event.CreepLeaked})
	d.Dispatch(event.Event{Type: event.GameOver})
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}

func TestUnsubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	kept := mocks.NewMockListener(ctrl)
	dropped := mocks.NewMockListener(ctrl)
	kept.EXPECT().OnEvent(gomock.Any()).Times(1)
	dropped.EXPECT().OnEvent(gomock.Any()).Times(0)

	d := event.NewDispatcher()
	d.Subscribe(event.CreepKilled, dropped)
	d.Subscribe(event.CreepKilled, kept)
	d.Unsubscribe(event.CreepKilled, dropped)
	d.Dispatch(event.Event{Type: event.CreepKilled})
}
