package handler

import (
	"wetlandwarden/internal/infrastructure/realtime"
	"wetlandwarden/internal/usecase"
)

var (
	authHandler       *AuthHandler
	profileHandler    *ProfileHandler
	volunteerHandler  *VolunteerHandler
	driveHandler      *DriveHandler
	reportHandler     *ReportHandler
	quizHandler       *QuizHandler
	newsHandler       *NewsHandler
	statisticsHandler *StatisticsHandler
	mapHandler        *MapHandler
	webSocketHandler  *WebSocketHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	profileUseCase *usecase.ProfileUseCase,
	volunteerUseCase *usecase.VolunteerUseCase,
	driveUseCase *usecase.DriveUseCase,
	reportUseCase *usecase.ReportUseCase,
	quizUseCase *usecase.QuizUseCase,
	newsUseCase *usecase.NewsUseCase,
	statisticsUseCase *usecase.StatisticsUseCase,
	mapUseCase *usecase.MapUseCase,
	hub *realtime.Hub,
) {
	authHandler = NewAuthHandler(authUseCase)
	profileHandler = NewProfileHandler(profileUseCase)
	volunteerHandler = NewVolunteerHandler(volunteerUseCase)
	driveHandler = NewDriveHandler(driveUseCase)
	reportHandler = NewReportHandler(reportUseCase)
	quizHandler = NewQuizHandler(quizUseCase)
	newsHandler = NewNewsHandler(newsUseCase)
	statisticsHandler = NewStatisticsHandler(statisticsUseCase)
	mapHandler = NewMapHandler(mapUseCase)
	webSocketHandler = NewWebSocketHandler(hub)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetProfileHandler() *ProfileHandler {
	return profileHandler
}

func GetVolunteerHandler() *VolunteerHandler {
	return volunteerHandler
}

func GetDriveHandler() *DriveHandler {
	return driveHandler
}

func GetReportHandler() *ReportHandler {
	return reportHandler
}

func GetQuizHandler() *QuizHandler {
	return quizHandler
}

func GetNewsHandler() *NewsHandler {
	return newsHandler
}

func GetStatisticsHandler() *StatisticsHandler {
	return statisticsHandler
}

func GetMapHandler() *MapHandler {
	return mapHandler
}

func GetWebSocketHandler() *WebSocketHandler {
	return webSocketHandler
}
