package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/blob --output domain/blob --outpkg blobmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name PlayByPlaySource --dir ../usecase --output usecase --outpkg usecasemock --filename play_by_play_source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name GameStorySource --dir ../usecase --output usecase --outpkg usecasemock --filename game_story_source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name GameFeedProvider --dir ../usecase --output usecase --outpkg usecasemock --filename game_feed_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ScheduleProvider --dir ../usecase --output usecase --outpkg usecasemock --filename schedule_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name TextGenerator --dir ../usecase --output usecase --outpkg usecasemock --filename text_generator_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ArtifactNotifier --dir ../usecase --output usecase --outpkg usecasemock --filename artifact_notifier_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name EventAssembler --dir ../usecase --output usecase --outpkg usecasemock --filename event_assembler_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name EventSource --dir ../usecase --output usecase --outpkg usecasemock --filename event_source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name GameLister --dir ../usecase --output usecase --outpkg usecasemock --filename game_lister_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name BackfillIndex --dir ../usecase --output usecase --outpkg usecasemock --filename backfill_index_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ScheduleLister --dir ../interfaces/httpapi --output httpapi --outpkg httpapimock --filename schedule_lister_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name GameProcessor --dir ../interfaces/httpapi --output httpapi --outpkg httpapimock --filename game_processor_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SummaryProvider --dir ../interfaces/httpapi --output httpapi --outpkg httpapimock --filename summary_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name BackfillRunner --dir ../interfaces/httpapi --output httpapi --outpkg httpapimock --filename backfill_runner_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name MissingGamesLister --dir ../interfaces/httpapi --output httpapi --outpkg httpapimock --filename missing_games_lister_mock.go
