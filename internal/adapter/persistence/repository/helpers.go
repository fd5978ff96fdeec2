package repository

import "time"

// Record list keys. Each key holds one JSON array.
const (
	KeyVisits               = "visits"
	KeyCollections          = "collections"
	KeyOrders               = "orders"
	KeyWorkCalendarHolidays = "workCalendarHolidays"
	KeyWorkCalendarSettings = "workCalendarSettings"
	KeyEvaluations          = "evaluations"
	KeySampleRequests       = "samples"
)

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
