package user

// User is the owner of a Google Calendar authorization. The service keeps no
// timetable data per user; only identity and calendar credentials persist.
type User struct {
	Id          int
	Uid         string
	Username    string
	DisplayName string
	Timezone    string
}
