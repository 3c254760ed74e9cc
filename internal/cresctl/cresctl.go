/**
 * Copyright (c) 2024 Peking University and Peking University
 * Changsha Institute for Computing and Digital Economy
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package cresctl

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/v3/cpu"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"CraneResCtl/internal/numlist"
	"CraneResCtl/internal/util"
)

// Selection slots for the raw option text, filled through util.SelectArg
// before any numeric expansion runs.
var (
	selCores *string
	selTasks *string
)

type expansion struct {
	kind  string
	spec  string
	count uint
	ids   []uint64
}

func Run() util.CraneCmdError {
	util.InitLogger(FlagDebugLevel)

	config := util.ParseConfig(FlagConfigFilePath)
	if config.LogFile != "" {
		util.SetLogFile(config.LogFile)
	}

	iface := config.Interface
	if FlagInterface != "" {
		iface = FlagInterface
	}

	if FlagCores != "" {
		util.SelectArg(&selCores, FlagCores)
	}
	if FlagTasks != "" {
		util.SelectArg(&selTasks, FlagTasks)
	}

	max := FlagMax
	if max == 0 {
		max = config.MaxListEntries
	}

	var expansions []*expansion

	if selCores != nil {
		spec := util.RemoveSpaces(*selCores)
		tab := make([]uint64, max)
		count, err := numlist.ParseListInto(spec, tab)
		if err != nil {
			log.Errorf("Failed to expand core list: %v.", err)
			if errors.Is(err, numlist.ErrCapacityExceeded) {
				return util.ErrorAllocation
			}
			return util.ErrorCmdArg
		}
		checkCoreIds(tab[:count])
		expansions = append(expansions,
			&expansion{kind: "core", spec: spec, count: count, ids: tab[:count]})
	}

	if selTasks != nil {
		spec := util.RemoveSpaces(*selTasks)
		tab, count, err := numlist.ParseListAlloc(spec)
		if err != nil {
			log.Errorf("Failed to expand task list: %v.", err)
			return util.ErrorCmdArg
		}
		expansions = append(expansions,
			&expansion{kind: "task", spec: spec, count: count, ids: tab[:count]})
	}

	if FlagJson || FlagQuery != "" {
		return outputJson(iface, config.AllocationMode, expansions)
	}

	outputTable(iface, config.AllocationMode, expansions)
	return util.ErrorSuccess
}

// checkCoreIds warns about core ids beyond the host cpu count. Expansion
// itself never depends on the host topology.
func checkCoreIds(ids []uint64) {
	numCpu, err := cpu.Counts(true)
	if err != nil || numCpu <= 0 {
		log.Debugf("Failed to get host cpu count: %v", err)
		return
	}
	for _, id := range ids {
		if id >= uint64(numCpu) {
			log.Warnf("Core %d is beyond the host cpu count %d.", id, numCpu)
		}
	}
}

func buildJson(iface, allocMode string, expansions []*expansion) string {
	out := "{}"
	out, _ = sjson.Set(out, "interface", iface)
	out, _ = sjson.Set(out, "allocationMode", allocMode)
	for _, e := range expansions {
		out, _ = sjson.Set(out, e.kind+"s.spec", e.spec)
		out, _ = sjson.Set(out, e.kind+"s.count", e.count)
		out, _ = sjson.Set(out, e.kind+"s.ids", e.ids)
	}
	return out
}

func outputJson(iface, allocMode string, expansions []*expansion) util.CraneCmdError {
	out := buildJson(iface, allocMode, expansions)

	if FlagQuery != "" {
		result := gjson.Get(out, FlagQuery)
		if !result.Exists() {
			log.Errorf("No field %q in the output.", FlagQuery)
			return util.ErrorCmdArg
		}
		fmt.Println(result.String())
		return util.ErrorSuccess
	}

	fmt.Println(out)
	return util.ErrorSuccess
}

func outputTable(iface, allocMode string, expansions []*expansion) {
	fmt.Printf("Interface=%s AllocationMode=%s\n", iface, allocMode)

	table := tablewriter.NewWriter(os.Stdout)
	util.SetBorderlessTable(table)
	if !FlagNoHeader {
		table.SetHeader([]string{"Kind", "Spec", "Count", "Ids"})
	}
	for _, e := range expansions {
		table.Append([]string{
			e.kind,
			e.spec,
			strconv.FormatUint(uint64(e.count), 10),
			numlist.FormatList(e.ids),
		})
	}
	table.Render()
}
