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

// Package degree tracks node degrees and answers order statistics over them.
//
// Multiset keeps a count per degree value in a Fenwick (binary indexed) tree, so inserting,
// removing or shifting a value and finding the k-th smallest value are all O(log D), where D is the
// largest degree seen so far. Tracker maps node names to their degree and drives the Multiset as
// degrees move up and down by one.
package degree
