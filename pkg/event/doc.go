/*
Copyright 2022 The Numaproj Authors.

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

// Package event turns raw payment records into canonical graph events.
//
// A record is one JSON object per line carrying the creation time of a payment and the two parties
// involved. The Normalizer validates a record, converts its timestamp to Unix seconds and orders the
// two identifiers so that an undirected edge always has the same key regardless of who paid whom.
package event
