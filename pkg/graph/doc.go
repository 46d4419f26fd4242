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

// Package graph holds the two indexes of the live payment graph.
//
// EdgeIndex maps every live edge to the timestamp of its most recent payment. TimeIndex is the
// inverse view, grouping edges into per-second buckets so that all edges older than a given
// second can be found without scanning the whole edge set. Neither index is safe for concurrent
// use; the window controller owns both and keeps them in sync.
package graph
