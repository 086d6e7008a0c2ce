package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name PageDriver --dir ../usecase --output usecase --outpkg usecasemock --filename page_driver_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Page --dir ../usecase --output usecase --outpkg usecasemock --filename page_mock.go
