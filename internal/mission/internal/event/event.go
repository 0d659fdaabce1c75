package event

const MissionApplicationEventName = "mission_application_events"

// MissionApplicationEvent 新的任务申请入库之后发出
type MissionApplicationEvent struct {
	ApplicationID int64  `json:"applicationId"`
	SN            string `json:"sn"`
	MissionID     int64  `json:"missionId"`
	MissionTitle  string `json:"missionTitle"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Experience    string `json:"experience"`
	Availability  string `json:"availability"`
	Portfolio     string `json:"portfolio,omitempty"`
	Motivation    string `json:"motivation,omitempty"`
	// Notified 申请人是否收到了确认邮件
	Notified bool  `json:"notified"`
	Ctime    int64 `json:"ctime"`
}

func (MissionApplicationEvent) Topic() string {
	return MissionApplicationEventName
}
