package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// Time logs an operation's duration (and error, if any) when the returned
// func runs. Used around polyline-cache hits so slow cache backends show up
// next to the OSRM fetches they are meant to avoid.
//
//	defer obs.Time(ctx, "polyline.cache.Get")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start).Milliseconds()

		if errp != nil && *errp != nil {
			log.Printf("op=%s dur=%dms req_id=%s err=%v", name, dur, reqID, *errp)
			return
		}
		log.Printf("op=%s dur=%dms req_id=%s", name, dur, reqID)
	}
}
