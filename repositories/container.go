package repositories

type Repos struct {
	User         UserRepo
	Form         FormRepo
	File         FileRepo
	Notification NotificationRepo
	Log          LogRepo
}

func New() *Repos {
	return &Repos{
		User:         &DBUserRepo{},
		Form:         &DBFormRepo{},
		File:         &DBFileRepo{},
		Notification: &DBNotificationRepo{},
		Log:          &DBLogRepo{},
	}
}
