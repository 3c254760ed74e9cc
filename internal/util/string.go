/**
 * Copyright (c) 2023 Peking University and Peking University
 * Changsha Institute for Computing and Digital Economy
 *
 * CraneSched is licensed under Mulan PSL v2.
 * You can use this software according to the terms and conditions of
 * the Mulan PSL v2.
 * You may obtain a copy of Mulan PSL v2 at:
 *          http://license.coscl.org.cn/MulanPSL2
 * THIS SOFTWARE IS PROVIDED ON AN "AS IS" BASIS,
 * WITHOUT WARRANTIES OF ANY KIND,
 * EITHER EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO NON-INFRINGEMENT,
 * MERCHANTABILITY OR FIT FOR A PARTICULAR PURPOSE.
 * See the Mulan PSL v2 for more details.
 */

package util

import (
	"regexp"
	"strings"
)

var listSpecRegex = regexp.MustCompile(
	`^(0[xX][0-9a-fA-F]+|[0-9]+)(-(0[xX][0-9a-fA-F]+|[0-9]+))?` +
		`(,(0[xX][0-9a-fA-F]+|[0-9]+)(-(0[xX][0-9a-fA-F]+|[0-9]+))?)*$`)

// CheckListSpec checks that spec is a comma separated list of decimal or
// hexadecimal numbers and A-B ranges. Spaces are ignored.
func CheckListSpec(spec string) bool {
	return listSpecRegex.MatchString(RemoveSpaces(spec))
}

// RemoveSpaces strips every space from a list specification before it is
// handed to the numeric expansion.
func RemoveSpaces(spec string) string {
	return strings.ReplaceAll(spec, " ", "")
}

// SelectArg stores a private copy of arg in the selection slot sel,
// replacing whatever copy the slot held before. Slots managed this way hold
// either nothing or a copy owned by the slot alone, never a reference into
// the caller's argument storage.
func SelectArg(sel **string, arg string) {
	s := strings.Clone(arg)
	*sel = &s
}
