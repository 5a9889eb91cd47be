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

package models

import "time"

// StoredCredential is a row of the client_credentials table used by the
// postgres credential medium.
type StoredCredential struct {
	Key       string    `gorm:"column:credential_key;primaryKey"`
	Value     string    `gorm:"column:credential_value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (StoredCredential) TableName() string {
	return "client_credentials"
}
