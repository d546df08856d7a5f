package controllers

import (
	"log"

	"github.com/wellnestapp/wellnest-backend/app/models"
	"github.com/wellnestapp/wellnest-backend/pkg/utils"
)

// missionEvents carries completion events from the engine to connected
// websocket clients. Delivery is best-effort: no connection means the
// event is dropped.
var missionEvents = make(chan models.MissionEvent, 64)

func StartMissionEventDispatcher() {
	go func() {
		for ev := range missionEvents {
			payload := map[string]interface{}{
				"event":           "mission_completed",
				"user_mission_id": ev.UserMissionID,
				"mission_title":   ev.MissionTitle,
				"points_awarded":  ev.PointsAwarded,
			}
			if err := utils.DefaultNotifier.Send(ev.UserID, payload); err != nil {
				if err != utils.ErrNoConnection {
					log.Printf("dispatcher: failed to notify user %v: %v", ev.UserID, err)
				}
			}
		}
	}()
}
