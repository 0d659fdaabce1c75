package event

const MissionApplicationEventName = "mission_application_events"

// MissionApplicationEvent 只解析通知需要的字段
type MissionApplicationEvent struct {
	ApplicationID int64  `json:"applicationId"`
	SN            string `json:"sn"`
	MissionID     int64  `json:"missionId"`
	MissionTitle  string `json:"missionTitle"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Experience    string `json:"experience"`
	Availability  string `json:"availability"`
	Portfolio     string `json:"portfolio"`
	Motivation    string `json:"motivation"`
	Notified      bool   `json:"notified"`
	Ctime         int64  `json:"ctime"`
}
