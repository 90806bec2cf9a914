// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wcutil provides the webcash value types shared throughout
wcwallet: fixed-point amounts, serial secrets and their public hashes,
and the claim-code wire encoding connecting them.

Amounts are integers scaled by 1e8, parsed and formatted with strict
canonicalization rules.  A parse distinguishes canonical from merely
acceptable input so callers can tolerate legacy encodings or reject them
uniformly.
*/
package wcutil
