// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

//go:build wireinject
// +build wireinject

package wiring

import (
	"github.com/google/wire"

	"github.com/wso2/tasklist-client/clients/taskssvc"
	"github.com/wso2/tasklist-client/config"
	"github.com/wso2/tasklist-client/credentials"
	"github.com/wso2/tasklist-client/navigation"
	"github.com/wso2/tasklist-client/services"
	"github.com/wso2/tasklist-client/storage"
)

var configProviderSet = wire.NewSet(
	ProvideConfigFromPtr,
)

var loggerProviderSet = wire.NewSet(
	ProvideLogger,
)

var credentialProviderSet = wire.NewSet(
	ProvideCredentialStore,
	wire.Bind(new(services.CredentialStore), new(*credentials.Store)),
	wire.Bind(new(taskssvc.CredentialSource), new(*credentials.Store)),
)

var clientProviderSet = wire.NewSet(
	ProvideTasksSvcClient,
)

var testClientProviderSet = wire.NewSet(
	ProvideTestTasksSvcClient,
)

var serviceProviderSet = wire.NewSet(
	services.NewAuthService,
	services.NewTaskService,
)

func InitializeAppParams(cfg *config.Config, navigator navigation.Navigator) (*AppParams, func(), error) {
	wire.Build(
		configProviderSet,
		loggerProviderSet,
		ProvideKeyValueStore,
		credentialProviderSet,
		clientProviderSet,
		serviceProviderSet,
		wire.Struct(new(AppParams), "*"),
	)
	return &AppParams{}, nil, nil
}

func InitializeTestAppParamsWithClientMocks(cfg *config.Config, medium storage.KeyValueStore, navigator navigation.Navigator, testClients TestClients) (*AppParams, error) {
	wire.Build(
		configProviderSet,
		loggerProviderSet,
		credentialProviderSet,
		testClientProviderSet,
		serviceProviderSet,
		wire.Struct(new(AppParams), "*"),
	)
	return &AppParams{}, nil
}
