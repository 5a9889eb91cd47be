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

// Package credentials owns the single bearer credential of the client.
//
// The Store is the only authority the rest of the client consults to decide
// whether a session exists. Validity is judged from the token's own exp claim;
// the signature is never verified here, so the check is advisory. A 401 from
// the task service is the ground truth and causes the credential to be
// cleared by the request pipeline.
package credentials
