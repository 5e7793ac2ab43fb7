/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package api provides acceptance test utilities for the checkout API.
//
// # Configuration
//
// Suites read the service location and endpoint paths from
// test/config.properties, overridden by environment variables or a .env
// file, see LoadTestConfig.  By default the suites start the mock checkout
// service in-process and reset its state before every spec, set
// USE_MOCK_SERVER=false to run against a deployed service instead.
//
// # Test Data
//
// Request bodies are read from the embedded testdata directory and refined
// with the payload builders, so a spec only states what differs from a
// well formed request.
package api
