//go:generate mockgen -source=../gateway.go          -destination=./mock_gateway.go          -package=mocks
//go:generate mockgen -source=../repository.go       -destination=./mock_repository.go       -package=mocks
//go:generate mockgen -source=../validator.go        -destination=./mock_validator.go        -package=mocks
//go:generate mockgen -source=../services.go         -destination=./mock_services.go         -package=mocks
//go:generate mockgen -source=../message_consumer.go -destination=./mock_message_consumer.go -package=mocks

package mocks
