package handler

import (
	"context"

	"teatr_manager/helper"
	"teatr_manager/utils"

	"github.com/gofiber/contrib/websocket"
)

// SeatMapSocket sends the current taken seats of a seance, then every update
// published after a booking, until the client disconnects.
func (h *Handler) SeatMapSocket(c *websocket.Conn) {
	seanceID, ok := c.Locals("inputId").(uint)
	if !ok {
		_ = c.Close()
		return
	}
	log := utils.Log.WithField("seance_id", seanceID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, unsubscribe, err := h.SeatMap.Subscribe(ctx, seanceID)
	if err != nil {
		log.WithError(err).Error("seat map subscribe failed")
		_ = c.Close()
		return
	}
	defer unsubscribe()

	taken, err := h.Seances.TakenSeatIDs(ctx, seanceID)
	if err != nil {
		log.WithError(err).Error("seat map snapshot failed")
		return
	}
	if err := c.WriteJSON(helper.SeatUpdate{SeanceId: seanceID, TakenSeatIds: taken}); err != nil {
		return
	}

	// the read side only detects the close frame
	go func() {
		defer cancel()
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case u, ok := <-updates:
			if !ok {
				return
			}
			if err := c.WriteJSON(u); err != nil {
				log.WithError(err).Debug("seat map client gone")
				return
			}
		}
	}
}
